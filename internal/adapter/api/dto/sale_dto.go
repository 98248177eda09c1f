package dto

import (
	"time"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/sale"
)

// SaleItemRequest representa um item da requisição de venda
type SaleItemRequest struct {
	ProductID          string  `json:"product_id" binding:"required"`
	Quantity           int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice          float64 `json:"unit_price" binding:"min=0"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"min=0,max=100"`
}

// SaleRequest representa a requisição de criação de venda
type SaleRequest struct {
	CustomerID     string            `json:"customer_id"`
	PaymentMethod  string            `json:"payment_method" binding:"required"`
	DiscountAmount float64           `json:"discount_amount" binding:"min=0"`
	Notes          string            `json:"notes"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleUpdateRequest representa a atualização parcial de venda
type SaleUpdateRequest struct {
	PaymentStatus *string `json:"payment_status"`
	Notes         *string `json:"notes"`
}

// SaleItemResponse representa um item na resposta de venda
type SaleItemResponse struct {
	ID                 string  `json:"id"`
	ProductID          string  `json:"product_id"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	TotalPrice         float64 `json:"total_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customer_id,omitempty"`
	TotalAmount    float64            `json:"total_amount"`
	DiscountAmount float64            `json:"discount_amount"`
	TaxAmount      float64            `json:"tax_amount"`
	FinalAmount    float64            `json:"final_amount"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentStatus  string             `json:"payment_status"`
	NFCeNumber     string             `json:"nfce_number,omitempty"`
	NFCeKey        string             `json:"nfce_key,omitempty"`
	Notes          string             `json:"notes"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ToSaleResponse converte a entidade para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	resp := SaleResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		TotalAmount:    s.TotalAmount,
		DiscountAmount: s.DiscountAmount,
		TaxAmount:      s.TaxAmount,
		FinalAmount:    s.FinalAmount,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  string(s.PaymentStatus),
		NFCeNumber:     s.NFCeNumber,
		NFCeKey:        s.NFCeKey,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			TotalPrice:         item.TotalPrice,
			DiscountPercentage: item.DiscountPercentage,
			DiscountAmount:     item.DiscountAmount,
		})
	}
	return resp
}

// ToSaleResponseList converte uma lista de entidades
func ToSaleResponseList(sales []*sale.Sale) []SaleResponse {
	result := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		result = append(result, ToSaleResponse(s))
	}
	return result
}
