package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do método de pagamento não pode ser vazio")
	ErrEmptyType     = errors.New("tipo do método de pagamento não pode ser vazio")
	ErrInvalidFee    = errors.New("taxa do método de pagamento não pode ser negativa")
	ErrInvalidAmount = errors.New("valor do pagamento deve ser maior que zero")
)

// Status representa o estado de um pagamento
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// Method representa um método de pagamento configurável
type Method struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"` // Único
	Type             string    `json:"type"` // cash, credit_card, debit_card, pix...
	RequiresApproval bool      `json:"requires_approval"`
	FeePercentage    float64   `json:"fee_percentage"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

// Payment representa um pagamento processado para uma venda
type Payment struct {
	ID                string     `json:"id"`
	SaleID            string     `json:"sale_id"`
	PaymentMethodID   string     `json:"payment_method_id"`
	Amount            float64    `json:"amount"`
	FeeAmount         float64    `json:"fee_amount"`
	NetAmount         float64    `json:"net_amount"`
	AuthorizationCode string     `json:"authorization_code"`
	TransactionID     string     `json:"transaction_id"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ProcessedAt       *time.Time `json:"processed_at"`
}

// NewMethod cria um novo método de pagamento ativo
func NewMethod(name, methodType string, requiresApproval bool, feePercentage float64) (*Method, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if methodType == "" {
		return nil, ErrEmptyType
	}
	if feePercentage < 0 {
		return nil, ErrInvalidFee
	}

	return &Method{
		ID:               uuid.New().String(),
		Name:             name,
		Type:             methodType,
		RequiresApproval: requiresApproval,
		FeePercentage:    feePercentage,
		Active:           true,
		CreatedAt:        time.Now(),
	}, nil
}

// NewPayment processa um pagamento para a venda: calcula a taxa a partir do
// percentual do método (fee = amount × fee% / 100; net = amount − fee) e
// aprova imediatamente, salvo quando o método exige aprovação manual.
func NewPayment(saleID string, method *Method, amount float64, authorizationCode, transactionID string) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	fee := amount * method.FeePercentage / 100
	p := &Payment{
		ID:                uuid.New().String(),
		SaleID:            saleID,
		PaymentMethodID:   method.ID,
		Amount:            amount,
		FeeAmount:         fee,
		NetAmount:         amount - fee,
		AuthorizationCode: authorizationCode,
		TransactionID:     transactionID,
		Status:            StatusApproved,
		CreatedAt:         time.Now(),
	}

	if method.RequiresApproval {
		p.Status = StatusPending
	} else {
		now := time.Now()
		p.ProcessedAt = &now
	}

	return p, nil
}

// IsApproved indica se o pagamento foi aprovado
func (p *Payment) IsApproved() bool {
	return p.Status == StatusApproved
}

// Deactivate marca o método como inativo (soft delete)
func (m *Method) Deactivate() {
	m.Active = false
}

// Validate verifica os invariantes do método após uma atualização parcial
func (m *Method) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Type == "" {
		return ErrEmptyType
	}
	if m.FeePercentage < 0 {
		return ErrInvalidFee
	}
	return nil
}
