package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/sale"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrSaleProductGone   = errors.New("produto da venda não encontrado ou inativo")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create. A venda, seus itens, o
// decremento de estoque e os movimentos de saída são gravados na mesma
// transação: qualquer item sem estoque desfaz a venda inteira.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, customer_id, total_amount, discount_amount, tax_amount,
				final_amount, payment_method, payment_status, nfce_number,
				nfce_key, notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			s.ID, nullIfEmpty(s.CustomerID), s.TotalAmount, s.DiscountAmount,
			s.TaxAmount, s.FinalAmount, s.PaymentMethod, s.PaymentStatus,
			nullIfEmpty(s.NFCeNumber), nullIfEmpty(s.NFCeKey), s.Notes,
			s.CreatedAt, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar venda: %w", err)
		}

		for _, item := range s.Items {
			var active bool
			err := tx.QueryRow(ctx,
				`SELECT active FROM products WHERE id = $1`, item.ProductID).Scan(&active)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: %s", ErrSaleProductGone, item.ProductID)
				}
				return fmt.Errorf("erro ao verificar produto: %w", err)
			}
			if !active {
				return fmt.Errorf("%w: %s", ErrSaleProductGone, item.ProductID)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO sale_items (
					id, sale_id, product_id, quantity, unit_price, total_price,
					discount_percentage, discount_amount
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				item.ID, s.ID, item.ProductID, item.Quantity, item.UnitPrice,
				item.TotalPrice, item.DiscountPercentage, item.DiscountAmount)
			if err != nil {
				return fmt.Errorf("erro ao criar item da venda: %w", err)
			}

			// Decremento condicional: só passa se houver saldo suficiente
			var newQuantity int
			err = tx.QueryRow(ctx,
				`UPDATE inventory SET quantity = quantity - $1, last_updated = NOW()
				WHERE product_id = $2 AND quantity >= $1
				RETURNING quantity`,
				item.Quantity, item.ProductID).Scan(&newQuantity)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					var controlled bool
					err := tx.QueryRow(ctx,
						`SELECT EXISTS (SELECT 1 FROM inventory WHERE product_id = $1)`,
						item.ProductID).Scan(&controlled)
					if err != nil {
						return fmt.Errorf("erro ao verificar estoque: %w", err)
					}
					if controlled {
						return fmt.Errorf("%w para o produto %s", ErrInsufficientStock, item.ProductID)
					}
					// Produto sem registro de estoque: venda segue sem baixa
					continue
				}
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}

			mov := inventory.NewMovement(item.ProductID, inventory.MovementOut,
				newQuantity+item.Quantity, newQuantity,
				fmt.Sprintf("Venda #%s", s.ID), s.ID)
			if err := insertMovement(ctx, tx, mov); err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx, selectSale+` WHERE id = $1`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, f sale.Filter) ([]*sale.Sale, error) {
	query := selectSale + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.CustomerID != "" {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, f.CustomerID)
		argIdx++
	}
	if f.PaymentStatus != "" {
		query += fmt.Sprintf(" AND payment_status = $%d", argIdx)
		args = append(args, f.PaymentStatus)
		argIdx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND created_at::date >= $%d", argIdx)
		args = append(args, *f.StartDate)
		argIdx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND created_at::date <= $%d", argIdx)
		args = append(args, *f.EndDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET payment_status = $1, notes = $2, updated_at = $3
		WHERE id = $4`,
		s.PaymentStatus, s.Notes, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// BuildReceipt implementa sale.Repository.BuildReceipt
func (r *SaleRepository) BuildReceipt(ctx context.Context, id string) (*sale.Receipt, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customerName := "Cliente não identificado"
	if s.CustomerID != "" {
		err := r.db.QueryRow(ctx,
			`SELECT name FROM customers WHERE id = $1`, s.CustomerID).Scan(&customerName)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("erro ao buscar cliente da venda: %w", err)
		}
	}

	receipt := &sale.Receipt{
		SaleID:        s.ID,
		Date:          s.CreatedAt.Format("02/01/2006 15:04"),
		Customer:      customerName,
		Subtotal:      s.TotalAmount,
		Discount:      s.DiscountAmount,
		Total:         s.FinalAmount,
		PaymentMethod: s.PaymentMethod,
		PaymentStatus: s.PaymentStatus,
	}

	for _, item := range s.Items {
		var productName string
		err := r.db.QueryRow(ctx,
			`SELECT name FROM products WHERE id = $1`, item.ProductID).Scan(&productName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				productName = "Produto removido"
			} else {
				return nil, fmt.Errorf("erro ao buscar produto do recibo: %w", err)
			}
		}
		receipt.Items = append(receipt.Items, sale.ReceiptItem{
			ProductName: productName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return receipt, nil
}

// TodaySummary implementa sale.Repository.TodaySummary
func (r *SaleRepository) TodaySummary(ctx context.Context) (*sale.DaySummary, error) {
	summary := &sale.DaySummary{
		PaymentMethods: make(map[string]sale.MethodBreakdown),
	}

	err := r.db.QueryRow(ctx,
		`SELECT TO_CHAR(CURRENT_DATE, 'DD/MM/YYYY'),
			COUNT(*), COALESCE(SUM(final_amount), 0)
		FROM sales WHERE created_at::date = CURRENT_DATE`).
		Scan(&summary.Date, &summary.TotalSales, &summary.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas do dia: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT payment_method, COUNT(*), COALESCE(SUM(final_amount), 0)
		FROM sales WHERE created_at::date = CURRENT_DATE
		GROUP BY payment_method`)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por método: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var mb sale.MethodBreakdown
		if err := rows.Scan(&method, &mb.Count, &mb.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler resumo por método: %w", err)
		}
		summary.PaymentMethods[method] = mb
	}
	return summary, rows.Err()
}

func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]*sale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, quantity, unit_price, total_price,
			discount_percentage, discount_amount
		FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens da venda: %w", err)
	}
	defer rows.Close()

	var items []*sale.Item
	for rows.Next() {
		var it sale.Item
		err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.DiscountPercentage, &it.DiscountAmount)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

const selectSale = `SELECT id, customer_id, total_amount, discount_amount,
	tax_amount, final_amount, payment_method, payment_status, nfce_number,
	nfce_key, notes, created_at, updated_at FROM sales`

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var customerID, nfceNumber, nfceKey *string
	err := row.Scan(&s.ID, &customerID, &s.TotalAmount, &s.DiscountAmount,
		&s.TaxAmount, &s.FinalAmount, &s.PaymentMethod, &s.PaymentStatus,
		&nfceNumber, &nfceKey, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.CustomerID = deref(customerID)
	s.NFCeNumber = deref(nfceNumber)
	s.NFCeKey = deref(nfceKey)
	return &s, nil
}
