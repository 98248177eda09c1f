package report

import (
	"context"
	"time"
)

// SalesRow é uma linha do relatório de vendas
type SalesRow struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // dd/mm/aaaa hh:mm
	Customer      string  `json:"customer"`
	TotalAmount   float64 `json:"total_amount"`
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"final_amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	ItemsCount    int     `json:"items_count"`
}

// SalesSummary agrega o relatório de vendas
type SalesSummary struct {
	TotalSales  int     `json:"total_sales"`
	TotalAmount float64 `json:"total_amount"`
	AverageSale float64 `json:"average_sale"`
}

// TopProduct é uma linha do relatório de produtos mais vendidos
type TopProduct struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	UnitPrice     float64 `json:"unit_price"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Breakdown agrega contagem e valor de um agrupamento
type Breakdown struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DailyFinancial é o relatório financeiro de um dia
type DailyFinancial struct {
	Date           string               `json:"date"` // dd/mm/aaaa
	TotalSales     int                  `json:"total_sales"`
	TotalRevenue   float64              `json:"total_revenue"`
	TotalDiscounts float64              `json:"total_discounts"`
	AverageSale    float64              `json:"average_sale"`
	PaymentMethods map[string]Breakdown `json:"payment_methods"`
	HourlySales    map[int]Breakdown    `json:"hourly_sales"`
}

// TopCustomer é uma linha do relatório de melhores clientes
type TopCustomer struct {
	CustomerID      string  `json:"customer_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	TotalPurchases  int     `json:"total_purchases"`
	TotalSpent      float64 `json:"total_spent"`
	AveragePurchase float64 `json:"average_purchase"`
}

// PeriodTotals agrega vendas e receita de um período
type PeriodTotals struct {
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// Dashboard é o resumo do painel
type Dashboard struct {
	Today          PeriodTotals `json:"today"`
	Month          PeriodTotals `json:"month"`
	LowStockCount  int          `json:"low_stock_count"`
	TotalProducts  int          `json:"total_products"`
	TotalCustomers int          `json:"total_customers"`
}

// Repository define as consultas agregadas de relatório. Todas são somente
// leitura e recalculam a partir do estado corrente.
type Repository interface {
	// SalesReport lista as vendas do período com o sumário
	SalesReport(ctx context.Context, start, end time.Time) ([]*SalesRow, *SalesSummary, error)

	// TopProducts agrupa itens de venda por produto no período
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]*TopProduct, error)

	// DailyFinancial resume um único dia
	DailyFinancial(ctx context.Context, day time.Time) (*DailyFinancial, error)

	// TopCustomers agrupa vendas por cliente no período
	TopCustomers(ctx context.Context, start, end time.Time, limit int) ([]*TopCustomer, error)

	// Dashboard agrega os números do painel
	Dashboard(ctx context.Context) (*Dashboard, error)
}
