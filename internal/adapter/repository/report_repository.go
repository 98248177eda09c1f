package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/report"
)

// ReportRepository implementa a interface report.Repository
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool) report.Repository {
	return &ReportRepository{
		db: db,
	}
}

// SalesReport implementa report.Repository.SalesReport
func (r *ReportRepository) SalesReport(ctx context.Context, start, end time.Time) ([]*report.SalesRow, *report.SalesSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, TO_CHAR(s.created_at, 'DD/MM/YYYY HH24:MI'),
			COALESCE(c.name, 'Não identificado'),
			s.total_amount, s.discount_amount, s.final_amount,
			s.payment_method, s.payment_status,
			(SELECT COUNT(*) FROM sale_items si WHERE si.sale_id = s.id)
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.created_at::date >= $1 AND s.created_at::date <= $2
		ORDER BY s.created_at DESC`,
		start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao gerar relatório de vendas: %w", err)
	}
	defer rows.Close()

	var result []*report.SalesRow
	summary := &report.SalesSummary{}

	for rows.Next() {
		var row report.SalesRow
		err := rows.Scan(&row.ID, &row.Date, &row.Customer, &row.TotalAmount,
			&row.Discount, &row.FinalAmount, &row.PaymentMethod,
			&row.PaymentStatus, &row.ItemsCount)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao ler linha do relatório: %w", err)
		}
		result = append(result, &row)
		summary.TotalSales++
		summary.TotalAmount += row.FinalAmount
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalAmount / float64(summary.TotalSales)
	}
	return result, summary, nil
}

// TopProducts implementa report.Repository.TopProducts
func (r *ReportRepository) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]*report.TopProduct, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.name, p.price,
			SUM(si.quantity), SUM(si.total_price)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at::date >= $1 AND s.created_at::date <= $2
		GROUP BY p.id, p.name, p.price
		ORDER BY SUM(si.quantity) DESC
		LIMIT $3`,
		start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório de mais vendidos: %w", err)
	}
	defer rows.Close()

	var products []*report.TopProduct
	for rows.Next() {
		var tp report.TopProduct
		err := rows.Scan(&tp.ProductID, &tp.ProductName, &tp.UnitPrice,
			&tp.TotalQuantity, &tp.TotalRevenue)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto mais vendido: %w", err)
		}
		products = append(products, &tp)
	}
	return products, rows.Err()
}

// DailyFinancial implementa report.Repository.DailyFinancial
func (r *ReportRepository) DailyFinancial(ctx context.Context, day time.Time) (*report.DailyFinancial, error) {
	result := &report.DailyFinancial{
		Date:           day.Format("02/01/2006"),
		PaymentMethods: make(map[string]report.Breakdown),
		HourlySales:    make(map[int]report.Breakdown),
	}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(final_amount), 0), COALESCE(SUM(discount_amount), 0)
		FROM sales WHERE created_at::date = $1`, day).
		Scan(&result.TotalSales, &result.TotalRevenue, &result.TotalDiscounts)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório financeiro: %w", err)
	}
	if result.TotalSales > 0 {
		result.AverageSale = result.TotalRevenue / float64(result.TotalSales)
	}

	rows, err := r.db.Query(ctx,
		`SELECT payment_method, COUNT(*), COALESCE(SUM(final_amount), 0)
		FROM sales WHERE created_at::date = $1
		GROUP BY payment_method`, day)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar por método: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var b report.Breakdown
		if err := rows.Scan(&method, &b.Count, &b.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler agrupamento por método: %w", err)
		}
		result.PaymentMethods[method] = b
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	hourRows, err := r.db.Query(ctx,
		`SELECT EXTRACT(HOUR FROM created_at)::int, COUNT(*), COALESCE(SUM(final_amount), 0)
		FROM sales WHERE created_at::date = $1
		GROUP BY 1 ORDER BY 1`, day)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar por hora: %w", err)
	}
	defer hourRows.Close()

	for hourRows.Next() {
		var hour int
		var b report.Breakdown
		if err := hourRows.Scan(&hour, &b.Count, &b.Amount); err != nil {
			return nil, fmt.Errorf("erro ao ler agrupamento por hora: %w", err)
		}
		result.HourlySales[hour] = b
	}
	return result, hourRows.Err()
}

// TopCustomers implementa report.Repository.TopCustomers
func (r *ReportRepository) TopCustomers(ctx context.Context, start, end time.Time, limit int) ([]*report.TopCustomer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, COALESCE(c.email, ''),
			COUNT(*), COALESCE(SUM(s.final_amount), 0)
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.created_at::date >= $1 AND s.created_at::date <= $2
		GROUP BY c.id, c.name, c.email
		ORDER BY SUM(s.final_amount) DESC
		LIMIT $3`,
		start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório de melhores clientes: %w", err)
	}
	defer rows.Close()

	var customers []*report.TopCustomer
	for rows.Next() {
		var tc report.TopCustomer
		err := rows.Scan(&tc.CustomerID, &tc.CustomerName, &tc.CustomerEmail,
			&tc.TotalPurchases, &tc.TotalSpent)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler melhor cliente: %w", err)
		}
		if tc.TotalPurchases > 0 {
			tc.AveragePurchase = tc.TotalSpent / float64(tc.TotalPurchases)
		}
		customers = append(customers, &tc)
	}
	return customers, rows.Err()
}

// Dashboard implementa report.Repository.Dashboard
func (r *ReportRepository) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	var d report.Dashboard

	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM sales WHERE created_at::date = CURRENT_DATE),
			COALESCE((SELECT SUM(final_amount) FROM sales WHERE created_at::date = CURRENT_DATE), 0),
			(SELECT COUNT(*) FROM sales WHERE DATE_TRUNC('month', created_at) = DATE_TRUNC('month', CURRENT_DATE)),
			COALESCE((SELECT SUM(final_amount) FROM sales WHERE DATE_TRUNC('month', created_at) = DATE_TRUNC('month', CURRENT_DATE)), 0),
			(SELECT COUNT(*) FROM inventory i JOIN products p ON p.id = i.product_id
				WHERE i.quantity <= i.min_stock AND p.active = true),
			(SELECT COUNT(*) FROM products WHERE active = true),
			(SELECT COUNT(*) FROM customers WHERE active = true)`).
		Scan(&d.Today.Sales, &d.Today.Revenue, &d.Month.Sales, &d.Month.Revenue,
			&d.LowStockCount, &d.TotalProducts, &d.TotalCustomers)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar painel: %w", err)
	}
	return &d, nil
}
