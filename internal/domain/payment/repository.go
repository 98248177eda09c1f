package payment

import (
	"context"
	"time"
)

// Filter define os filtros de listagem de transações de pagamento
type Filter struct {
	SaleID          string
	PaymentMethodID string
	Status          string
	StartDate       *time.Time
	EndDate         *time.Time
	Skip            int
	Limit           int
}

// WithMethod é um pagamento acompanhado do nome do método
type WithMethod struct {
	Payment
	MethodName string `json:"payment_method"`
}

// MethodSummary agrega os pagamentos aprovados de um método
type MethodSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	TotalFees   float64 `json:"total_fees"`
	NetAmount   float64 `json:"net_amount"`
}

// SummaryTotals agrega os totais gerais do resumo de pagamentos
type SummaryTotals struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalFees         float64 `json:"total_fees"`
	NetAmount         float64 `json:"net_amount"`
	TotalTransactions int     `json:"total_transactions"`
}

// Repository define a interface do repositório de pagamentos
type Repository interface {
	// CreateMethod persiste um novo método de pagamento
	CreateMethod(ctx context.Context, m *Method) error

	// FindMethodByID busca um método pelo ID
	FindMethodByID(ctx context.Context, id string) (*Method, error)

	// ListMethods lista métodos; active segue a convenção "true"/"false"/"all"
	ListMethods(ctx context.Context, active string) ([]*Method, error)

	// UpdateMethod atualiza um método existente
	UpdateMethod(ctx context.Context, m *Method) error

	// DeactivateMethod marca um método como inativo
	DeactivateMethod(ctx context.Context, id string) error

	// ExistsMethodByName verifica se outro método usa o mesmo nome
	ExistsMethodByName(ctx context.Context, name, excludeID string) (bool, error)

	// Create persiste o pagamento e, quando aprovado, marca a venda como
	// paga na mesma transação
	Create(ctx context.Context, p *Payment) error

	// List lista transações com o nome do método, mais recentes primeiro
	List(ctx context.Context, f Filter) ([]*WithMethod, error)

	// Summarize agrega pagamentos aprovados por método no período
	Summarize(ctx context.Context, start, end *time.Time) (map[string]*MethodSummary, *SummaryTotals, error)
}
