package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/payment"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/sale"
)

// Erros específicos do repositório
var (
	ErrMethodNotFound  = errors.New("método de pagamento não encontrado")
	ErrMethodDuplicate = errors.New("já existe um método de pagamento com este nome")
	ErrPaymentSaleGone = errors.New("venda do pagamento não encontrada")
)

// PaymentRepository implementa a interface payment.Repository
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository cria uma nova instância de PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) payment.Repository {
	return &PaymentRepository{
		db: db,
	}
}

// CreateMethod implementa payment.Repository.CreateMethod
func (r *PaymentRepository) CreateMethod(ctx context.Context, m *payment.Method) error {
	exists, err := r.ExistsMethodByName(ctx, m.Name, "")
	if err != nil {
		return fmt.Errorf("erro ao verificar nome do método: %w", err)
	}
	if exists {
		return ErrMethodDuplicate
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO payment_methods (id, name, type, requires_approval, fee_percentage, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Type, m.RequiresApproval, m.FeePercentage, m.Active, m.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrMethodDuplicate
		}
		return fmt.Errorf("erro ao criar método de pagamento: %w", err)
	}
	return nil
}

// FindMethodByID implementa payment.Repository.FindMethodByID
func (r *PaymentRepository) FindMethodByID(ctx context.Context, id string) (*payment.Method, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, type, requires_approval, fee_percentage, active, created_at
		FROM payment_methods WHERE id = $1`, id)

	m, err := scanMethod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMethodNotFound
		}
		return nil, fmt.Errorf("erro ao buscar método de pagamento: %w", err)
	}
	return m, nil
}

// ListMethods implementa payment.Repository.ListMethods
func (r *PaymentRepository) ListMethods(ctx context.Context, active string) ([]*payment.Method, error) {
	query := `SELECT id, name, type, requires_approval, fee_percentage, active, created_at
		FROM payment_methods`
	args := []interface{}{}

	switch active {
	case "false":
		query += " WHERE active = $1"
		args = append(args, false)
	case "all":
		// sem filtro
	default:
		query += " WHERE active = $1"
		args = append(args, true)
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar métodos de pagamento: %w", err)
	}
	defer rows.Close()

	var methods []*payment.Method
	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler método de pagamento: %w", err)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// UpdateMethod implementa payment.Repository.UpdateMethod
func (r *PaymentRepository) UpdateMethod(ctx context.Context, m *payment.Method) error {
	exists, err := r.ExistsMethodByName(ctx, m.Name, m.ID)
	if err != nil {
		return fmt.Errorf("erro ao verificar nome do método: %w", err)
	}
	if exists {
		return ErrMethodDuplicate
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE payment_methods SET
			name = $1, type = $2, requires_approval = $3, fee_percentage = $4, active = $5
		WHERE id = $6`,
		m.Name, m.Type, m.RequiresApproval, m.FeePercentage, m.Active, m.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrMethodDuplicate
		}
		return fmt.Errorf("erro ao atualizar método de pagamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMethodNotFound
	}
	return nil
}

// DeactivateMethod implementa payment.Repository.DeactivateMethod
func (r *PaymentRepository) DeactivateMethod(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payment_methods SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao desativar método de pagamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMethodNotFound
	}
	return nil
}

// ExistsMethodByName implementa payment.Repository.ExistsMethodByName
func (r *PaymentRepository) ExistsMethodByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payment_methods WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar nome do método: %w", err)
	}
	return exists, nil
}

// Create implementa payment.Repository.Create. O pagamento é gravado e,
// quando aprovado, a venda é marcada como paga na mesma transação.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, p.SaleID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("erro ao verificar venda: %w", err)
		}
		if !exists {
			return ErrPaymentSaleGone
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO payments (
				id, sale_id, payment_method_id, amount, fee_amount, net_amount,
				authorization_code, transaction_id, status, created_at, processed_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, p.SaleID, p.PaymentMethodID, p.Amount, p.FeeAmount, p.NetAmount,
			nullIfEmpty(p.AuthorizationCode), nullIfEmpty(p.TransactionID),
			p.Status, p.CreatedAt, p.ProcessedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar pagamento: %w", err)
		}

		if p.Status == payment.StatusApproved {
			_, err = tx.Exec(ctx,
				`UPDATE sales SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
				sale.StatusPaid, p.SaleID)
			if err != nil {
				return fmt.Errorf("erro ao marcar venda como paga: %w", err)
			}
		}
		return nil
	})
}

// List implementa payment.Repository.List
func (r *PaymentRepository) List(ctx context.Context, f payment.Filter) ([]*payment.WithMethod, error) {
	query := `SELECT p.id, p.sale_id, p.payment_method_id, p.amount, p.fee_amount,
			p.net_amount, p.authorization_code, p.transaction_id, p.status,
			p.created_at, p.processed_at, m.name
		FROM payments p
		JOIN payment_methods m ON m.id = p.payment_method_id
		WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.SaleID != "" {
		query += fmt.Sprintf(" AND p.sale_id = $%d", argIdx)
		args = append(args, f.SaleID)
		argIdx++
	}
	if f.PaymentMethodID != "" {
		query += fmt.Sprintf(" AND p.payment_method_id = $%d", argIdx)
		args = append(args, f.PaymentMethodID)
		argIdx++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, f.Status)
		argIdx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND p.created_at::date >= $%d", argIdx)
		args = append(args, *f.StartDate)
		argIdx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND p.created_at::date <= $%d", argIdx)
		args = append(args, *f.EndDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pagamentos: %w", err)
	}
	defer rows.Close()

	var payments []*payment.WithMethod
	for rows.Next() {
		var wm payment.WithMethod
		var authCode, txID *string
		err := rows.Scan(&wm.ID, &wm.SaleID, &wm.PaymentMethodID, &wm.Amount,
			&wm.FeeAmount, &wm.NetAmount, &authCode, &txID, &wm.Status,
			&wm.CreatedAt, &wm.ProcessedAt, &wm.MethodName)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pagamento: %w", err)
		}
		wm.AuthorizationCode = deref(authCode)
		wm.TransactionID = deref(txID)
		payments = append(payments, &wm)
	}
	return payments, rows.Err()
}

// Summarize implementa payment.Repository.Summarize
func (r *PaymentRepository) Summarize(ctx context.Context, start, end *time.Time) (map[string]*payment.MethodSummary, *payment.SummaryTotals, error) {
	query := `SELECT m.name, COUNT(*), COALESCE(SUM(p.amount), 0),
			COALESCE(SUM(p.fee_amount), 0), COALESCE(SUM(p.net_amount), 0)
		FROM payments p
		JOIN payment_methods m ON m.id = p.payment_method_id
		WHERE p.status = 'approved'`
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		query += fmt.Sprintf(" AND p.created_at::date >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		query += fmt.Sprintf(" AND p.created_at::date <= $%d", argIdx)
		args = append(args, *end)
		argIdx++
	}
	query += " GROUP BY m.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao resumir pagamentos: %w", err)
	}
	defer rows.Close()

	byMethod := make(map[string]*payment.MethodSummary)
	totals := &payment.SummaryTotals{}

	for rows.Next() {
		var name string
		var ms payment.MethodSummary
		err := rows.Scan(&name, &ms.Count, &ms.TotalAmount, &ms.TotalFees, &ms.NetAmount)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao ler resumo de pagamentos: %w", err)
		}
		byMethod[name] = &ms
		totals.TotalAmount += ms.TotalAmount
		totals.TotalFees += ms.TotalFees
		totals.NetAmount += ms.NetAmount
		totals.TotalTransactions += ms.Count
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return byMethod, totals, nil
}

func scanMethod(row pgx.Row) (*payment.Method, error) {
	var m payment.Method
	err := row.Scan(&m.ID, &m.Name, &m.Type, &m.RequiresApproval,
		&m.FeePercentage, &m.Active, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
