package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice = errors.New("preço do produto não pode ser negativo")
)

// Product representa um produto do catálogo
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CostPrice   float64   `json:"cost_price"`
	Barcode     string    `json:"barcode"`  // Código de barras (único quando presente)
	Category    string    `json:"category"` // Rótulo livre de categoria
	Brand       string    `json:"brand"`
	Weight      float64   `json:"weight"`
	Dimensions  string    `json:"dimensions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category representa uma categoria informativa de produtos.
// Produtos referenciam categorias apenas pelo rótulo, não por chave.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProduct cria um novo produto ativo
func NewProduct(name string, price, costPrice float64, barcode, category string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		CostPrice: costPrice,
		Barcode:   barcode,
		Category:  category,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewCategory cria uma nova categoria ativa
func NewCategory(name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now(),
	}, nil
}

// Validate verifica os invariantes do produto após uma atualização parcial
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Deactivate marca o produto como inativo (soft delete)
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// Touch atualiza o timestamp de modificação
func (p *Product) Touch() {
	p.UpdatedAt = time.Now()
}
