package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems            = errors.New("venda precisa de pelo menos um item")
	ErrEmptyPaymentMethod = errors.New("método de pagamento não pode ser vazio")
	ErrInvalidQuantity    = errors.New("quantidade do item deve ser maior que zero")
	ErrInvalidUnitPrice   = errors.New("preço unitário do item não pode ser negativo")
)

// Status representa o estado de pagamento da venda
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Item representa um item de venda. Os valores são calculados na criação e
// imutáveis depois de persistidos.
type Item struct {
	ID                 string  `json:"id"`
	SaleID             string  `json:"sale_id"`
	ProductID          string  `json:"product_id"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	TotalPrice         float64 `json:"total_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
}

// Sale representa uma venda com seus itens
type Sale struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"` // Vazio para cliente não identificado
	TotalAmount    float64   `json:"total_amount"`
	DiscountAmount float64   `json:"discount_amount"` // Desconto do cabeçalho
	TaxAmount      float64   `json:"tax_amount"`
	FinalAmount    float64   `json:"final_amount"`
	PaymentMethod  string    `json:"payment_method"` // Rótulo livre
	PaymentStatus  Status    `json:"payment_status"`
	NFCeNumber     string    `json:"nfce_number"` // Placeholder, nunca preenchido
	NFCeKey        string    `json:"nfce_key"`    // Placeholder, nunca preenchido
	Notes          string    `json:"notes"`
	Items          []*Item   `json:"items"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewItem cria um item de venda calculando desconto e total:
// desconto = preço × qtd × percentual / 100; total = preço × qtd − desconto.
func NewItem(productID string, quantity int, unitPrice, discountPercentage float64) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}

	gross := unitPrice * float64(quantity)
	discount := gross * discountPercentage / 100

	return &Item{
		ID:                 uuid.New().String(),
		ProductID:          productID,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		TotalPrice:         gross - discount,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discount,
	}, nil
}

// NewSale cria uma venda pendente a partir dos itens, somando os totais:
// total = Σ totais dos itens; final = total − desconto do cabeçalho.
func NewSale(customerID, paymentMethod string, headerDiscount float64, notes string, items []*Item) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if paymentMethod == "" {
		return nil, ErrEmptyPaymentMethod
	}

	s := &Sale{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		DiscountAmount: headerDiscount,
		PaymentMethod:  paymentMethod,
		PaymentStatus:  StatusPending,
		Notes:          notes,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	for _, item := range items {
		item.SaleID = s.ID
		s.TotalAmount += item.TotalPrice
		s.Items = append(s.Items, item)
	}
	s.FinalAmount = s.TotalAmount - headerDiscount

	return s, nil
}

// MarkPaid marca a venda como paga
func (s *Sale) MarkPaid() {
	s.PaymentStatus = StatusPaid
	s.UpdatedAt = time.Now()
}
