package sale

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de vendas
type Filter struct {
	CustomerID    string
	PaymentStatus string
	StartDate     *time.Time // Data inicial inclusiva (só a parte de data)
	EndDate       *time.Time // Data final inclusiva
	Skip          int
	Limit         int
}

// ReceiptItem é uma linha do recibo da venda
type ReceiptItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Receipt é a visão de recibo de uma venda
type Receipt struct {
	SaleID        string        `json:"sale_id"`
	Date          string        `json:"date"` // dd/mm/aaaa hh:mm
	Customer      string        `json:"customer"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	PaymentMethod string        `json:"payment_method"`
	PaymentStatus Status        `json:"payment_status"`
}

// MethodBreakdown agrega contagem e valor por método de pagamento
type MethodBreakdown struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DaySummary é o resumo de vendas de um dia
type DaySummary struct {
	Date           string                     `json:"date"` // dd/mm/aaaa
	TotalSales     int                        `json:"total_sales"`
	TotalAmount    float64                    `json:"total_amount"`
	PaymentMethods map[string]MethodBreakdown `json:"payment_methods"`
}

// Repository define a interface do repositório de vendas
type Repository interface {
	// Create persiste a venda, seus itens, o decremento de estoque e os
	// movimentos de saída como uma única unidade atômica
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda com seus itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista vendas com filtros, mais recentes primeiro (sem itens)
	List(ctx context.Context, f Filter) ([]*Sale, error)

	// Update persiste alterações de payment_status e notes
	Update(ctx context.Context, s *Sale) error

	// BuildReceipt monta o recibo da venda com nomes de cliente e produtos
	BuildReceipt(ctx context.Context, id string) (*Receipt, error)

	// TodaySummary resume as vendas do dia corrente
	TodaySummary(ctx context.Context) (*DaySummary, error)
}
