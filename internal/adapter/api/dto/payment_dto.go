package dto

import (
	"time"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/payment"
)

// PaymentMethodRequest representa a requisição de método de pagamento
type PaymentMethodRequest struct {
	Name             string  `json:"name" binding:"required"`
	Type             string  `json:"type" binding:"required"`
	RequiresApproval bool    `json:"requires_approval"`
	FeePercentage    float64 `json:"fee_percentage" binding:"min=0"`
}

// PaymentMethodUpdateRequest representa a atualização parcial de método
type PaymentMethodUpdateRequest struct {
	Name             *string  `json:"name"`
	Type             *string  `json:"type"`
	RequiresApproval *bool    `json:"requires_approval"`
	FeePercentage    *float64 `json:"fee_percentage"`
	Active           *bool    `json:"active"`
}

// ProcessPaymentRequest representa a requisição de processamento de pagamento
type ProcessPaymentRequest struct {
	PaymentMethodID   string  `json:"payment_method_id" binding:"required"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	AuthorizationCode string  `json:"authorization_code"`
	TransactionID     string  `json:"transaction_id"`
}

// PaymentMethodResponse representa a resposta de método de pagamento
type PaymentMethodResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	RequiresApproval bool      `json:"requires_approval"`
	FeePercentage    float64   `json:"fee_percentage"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

// PaymentResponse representa a resposta de pagamento processado
type PaymentResponse struct {
	ID                string     `json:"id"`
	SaleID            string     `json:"sale_id"`
	PaymentMethodID   string     `json:"payment_method_id"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	Amount            float64    `json:"amount"`
	FeeAmount         float64    `json:"fee_amount"`
	NetAmount         float64    `json:"net_amount"`
	AuthorizationCode string     `json:"authorization_code,omitempty"`
	TransactionID     string     `json:"transaction_id,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`
}

// PaymentSummaryResponse representa o resumo de pagamentos aprovados
type PaymentSummaryResponse struct {
	ByMethod map[string]payment.MethodSummary `json:"by_method"`
	Totals   payment.SummaryTotals            `json:"totals"`
}

// ToPaymentMethodResponse converte a entidade para o DTO de resposta
func ToPaymentMethodResponse(m *payment.Method) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:               m.ID,
		Name:             m.Name,
		Type:             m.Type,
		RequiresApproval: m.RequiresApproval,
		FeePercentage:    m.FeePercentage,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
	}
}

// ToPaymentMethodResponseList converte uma lista de métodos
func ToPaymentMethodResponseList(methods []*payment.Method) []PaymentMethodResponse {
	result := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		result = append(result, ToPaymentMethodResponse(m))
	}
	return result
}

// ToPaymentResponse converte a entidade de pagamento
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		SaleID:            p.SaleID,
		PaymentMethodID:   p.PaymentMethodID,
		Amount:            p.Amount,
		FeeAmount:         p.FeeAmount,
		NetAmount:         p.NetAmount,
		AuthorizationCode: p.AuthorizationCode,
		TransactionID:     p.TransactionID,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		ProcessedAt:       p.ProcessedAt,
	}
}

// ToPaymentWithMethodResponse inclui o nome do método na resposta
func ToPaymentWithMethodResponse(wm *payment.WithMethod) PaymentResponse {
	resp := ToPaymentResponse(&wm.Payment)
	resp.PaymentMethod = wm.MethodName
	return resp
}

// ToPaymentWithMethodResponseList converte uma lista de transações
func ToPaymentWithMethodResponseList(payments []*payment.WithMethod) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for _, wm := range payments {
		result = append(result, ToPaymentWithMethodResponse(wm))
	}
	return result
}

// Apply aplica os campos presentes da atualização na entidade
func (r PaymentMethodUpdateRequest) Apply(m *payment.Method) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Type != nil {
		m.Type = *r.Type
	}
	if r.RequiresApproval != nil {
		m.RequiresApproval = *r.RequiresApproval
	}
	if r.FeePercentage != nil {
		m.FeePercentage = *r.FeePercentage
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
}
