package dto

import (
	"time"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/product"
)

// ProductRequest representa a requisição de criação de produto
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	CostPrice   float64 `json:"cost_price"`
	Barcode     string  `json:"barcode"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Weight      float64 `json:"weight"`
	Dimensions  string  `json:"dimensions"`
}

// ProductUpdateRequest representa a requisição de atualização parcial de
// produto; campos ausentes preservam o valor corrente
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CostPrice   *float64 `json:"cost_price"`
	Barcode     *string  `json:"barcode"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Weight      *float64 `json:"weight"`
	Dimensions  *string  `json:"dimensions"`
	Active      *bool    `json:"active"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CostPrice   float64   `json:"cost_price"`
	Barcode     string    `json:"barcode"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Weight      float64   `json:"weight"`
	Dimensions  string    `json:"dimensions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse converte a entidade para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Brand:       p.Brand,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponseList converte uma lista de entidades
func ToProductResponseList(products []*product.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result
}

// Apply aplica os campos presentes da atualização na entidade
func (r ProductUpdateRequest) Apply(p *product.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.Barcode != nil {
		p.Barcode = *r.Barcode
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
	if r.Weight != nil {
		p.Weight = *r.Weight
	}
	if r.Dimensions != nil {
		p.Dimensions = *r.Dimensions
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
}
