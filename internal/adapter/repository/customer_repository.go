package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/customer"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound          = errors.New("cliente não encontrado")
	ErrCustomerDuplicateEmail    = errors.New("já existe um cliente com este email")
	ErrCustomerDuplicateDocument = errors.New("já existe um cliente com este documento")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if c.Email != "" {
		exists, err := r.ExistsByEmail(ctx, c.Email, "")
		if err != nil {
			return fmt.Errorf("erro ao verificar email: %w", err)
		}
		if exists {
			return ErrCustomerDuplicateEmail
		}
	}
	if c.Document != "" {
		exists, err := r.ExistsByDocument(ctx, c.Document, "")
		if err != nil {
			return fmt.Errorf("erro ao verificar documento: %w", err)
		}
		if exists {
			return ErrCustomerDuplicateDocument
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, email, phone, document, address_street, address_number,
			address_complement, address_neighborhood, address_city, address_state,
			address_zipcode, birth_date, gender, notes, active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)`,
		c.ID, c.Name, nullIfEmpty(c.Email), c.Phone, nullIfEmpty(c.Document),
		c.AddressStreet, c.AddressNumber, c.AddressComplement, c.AddressNeighborhood,
		c.AddressCity, c.AddressState, c.AddressZipcode, c.BirthDate, c.Gender,
		c.Notes, c.Active, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "customers_email_key") {
			return ErrCustomerDuplicateEmail
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCustomerDuplicateDocument
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, selectCustomer+` WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return c, nil
}

// FindByEmail implementa customer.Repository.FindByEmail
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, selectCustomer+` WHERE email = $1`, email)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente por email: %w", err)
	}
	return c, nil
}

// FindByDocument implementa customer.Repository.FindByDocument
func (r *CustomerRepository) FindByDocument(ctx context.Context, document string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, selectCustomer+` WHERE document = $1`, document)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente por documento: %w", err)
	}
	return c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, f customer.Filter) ([]*customer.Customer, error) {
	query := selectCustomer + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	switch f.Active {
	case "false":
		query += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, false)
		argIdx++
	case "all":
		// sem filtro
	default:
		query += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, true)
		argIdx++
	}

	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR document ILIKE $%d)",
			argIdx, argIdx, argIdx)
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if c.Email != "" {
		exists, err := r.ExistsByEmail(ctx, c.Email, c.ID)
		if err != nil {
			return fmt.Errorf("erro ao verificar email: %w", err)
		}
		if exists {
			return ErrCustomerDuplicateEmail
		}
	}
	if c.Document != "" {
		exists, err := r.ExistsByDocument(ctx, c.Document, c.ID)
		if err != nil {
			return fmt.Errorf("erro ao verificar documento: %w", err)
		}
		if exists {
			return ErrCustomerDuplicateDocument
		}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $1, email = $2, phone = $3, document = $4,
			address_street = $5, address_number = $6, address_complement = $7,
			address_neighborhood = $8, address_city = $9, address_state = $10,
			address_zipcode = $11, birth_date = $12, gender = $13, notes = $14,
			active = $15, updated_at = $16
		WHERE id = $17`,
		c.Name, nullIfEmpty(c.Email), c.Phone, nullIfEmpty(c.Document),
		c.AddressStreet, c.AddressNumber, c.AddressComplement,
		c.AddressNeighborhood, c.AddressCity, c.AddressState,
		c.AddressZipcode, c.BirthDate, c.Gender, c.Notes,
		c.Active, c.UpdatedAt, c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "customers_email_key") {
			return ErrCustomerDuplicateEmail
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCustomerDuplicateDocument
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Deactivate implementa customer.Repository.Deactivate
func (r *CustomerRepository) Deactivate(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao desativar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// ExistsByEmail implementa customer.Repository.ExistsByEmail
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}
	return exists, nil
}

// ExistsByDocument implementa customer.Repository.ExistsByDocument
func (r *CustomerRepository) ExistsByDocument(ctx context.Context, document, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE document = $1 AND id != $2)`,
		document, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar documento: %w", err)
	}
	return exists, nil
}

const selectCustomer = `SELECT id, name, email, phone, document, address_street,
	address_number, address_complement, address_neighborhood, address_city,
	address_state, address_zipcode, birth_date, gender, notes, active,
	created_at, updated_at FROM customers`

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	var email, document *string
	err := row.Scan(&c.ID, &c.Name, &email, &c.Phone, &document,
		&c.AddressStreet, &c.AddressNumber, &c.AddressComplement,
		&c.AddressNeighborhood, &c.AddressCity, &c.AddressState,
		&c.AddressZipcode, &c.BirthDate, &c.Gender, &c.Notes,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Email = deref(email)
	c.Document = deref(document)
	return &c, nil
}
