package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound         = errors.New("produto não encontrado")
	ErrProductDuplicateBarcode = errors.New("já existe um produto com este código de barras")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if p.Barcode != "" {
		exists, err := r.ExistsByBarcode(ctx, p.Barcode, "")
		if err != nil {
			return fmt.Errorf("erro ao verificar código de barras: %w", err)
		}
		if exists {
			return ErrProductDuplicateBarcode
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, description, price, cost_price, barcode, category,
			brand, weight, dimensions, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Name, p.Description, p.Price, p.CostPrice, nullIfEmpty(p.Barcode),
		p.Category, p.Brand, p.Weight, p.Dimensions, p.Active, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, price, cost_price, barcode, category,
			brand, weight, dimensions, active, created_at, updated_at
		FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, price, cost_price, barcode, category,
			brand, weight, dimensions, active, created_at, updated_at
		FROM products WHERE barcode = $1`, barcode)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por código de barras: %w", err)
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, f product.Filter) ([]*product.Product, error) {
	query := `SELECT id, name, description, price, cost_price, barcode, category,
			brand, weight, dimensions, active, created_at, updated_at
		FROM products WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	switch f.Active {
	case product.InactiveOnly:
		query += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, false)
		argIdx++
	case product.ActiveAll:
		// sem filtro
	default:
		query += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, true)
		argIdx++
	}

	if f.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR barcode ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Search+"%")
		argIdx++
	}

	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if p.Barcode != "" {
		exists, err := r.ExistsByBarcode(ctx, p.Barcode, p.ID)
		if err != nil {
			return fmt.Errorf("erro ao verificar código de barras: %w", err)
		}
		if exists {
			return ErrProductDuplicateBarcode
		}
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, description = $2, price = $3, cost_price = $4,
			barcode = $5, category = $6, brand = $7, weight = $8,
			dimensions = $9, active = $10, updated_at = $11
		WHERE id = $12`,
		p.Name, p.Description, p.Price, p.CostPrice, nullIfEmpty(p.Barcode),
		p.Category, p.Brand, p.Weight, p.Dimensions, p.Active, p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Deactivate implementa product.Repository.Deactivate
func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao desativar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ExistsByBarcode implementa product.Repository.ExistsByBarcode
func (r *ProductRepository) ExistsByBarcode(ctx context.Context, barcode, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE barcode = $1 AND id != $2)`,
		barcode, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar código de barras: %w", err)
	}
	return exists, nil
}

// ListCategories implementa product.Repository.ListCategories
func (r *ProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT category FROM products
		WHERE active = true AND category IS NOT NULL AND category != ''
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var barcode *string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CostPrice,
		&barcode, &p.Category, &p.Brand, &p.Weight, &p.Dimensions,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Barcode = deref(barcode)
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
