package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProduct      = errors.New("produto do estoque não pode ser vazio")
	ErrNegativeQuantity  = errors.New("quantidade do estoque não pode ser negativa")
)

// MovementType identifica o tipo de movimentação de estoque
type MovementType string

const (
	MovementIn         MovementType = "in"         // Entrada (estoque inicial)
	MovementOut        MovementType = "out"        // Saída (venda)
	MovementAdjustment MovementType = "adjustment" // Ajuste manual
)

// Inventory representa o registro de estoque de um produto (um por produto)
type Inventory struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"min_stock"`
	MaxStock    int       `json:"max_stock"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
}

// Movement é um registro imutável de alteração de quantidade de estoque.
// O invariante NewQuantity - PreviousQuantity == Quantity vale sempre.
type Movement struct {
	ID               string       `json:"id"`
	ProductID        string       `json:"product_id"`
	MovementType     MovementType `json:"movement_type"`
	Quantity         int          `json:"quantity"` // Delta assinado
	PreviousQuantity int          `json:"previous_quantity"`
	NewQuantity      int          `json:"new_quantity"`
	Reason           string       `json:"reason"`
	ReferenceID      string       `json:"reference_id"` // ID da venda, quando houver
	CreatedAt        time.Time    `json:"created_at"`
}

// NewInventory cria um novo registro de estoque
func NewInventory(productID string, quantity, minStock, maxStock int, location string) (*Inventory, error) {
	if productID == "" {
		return nil, ErrEmptyProduct
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Inventory{
		ID:          uuid.New().String(),
		ProductID:   productID,
		Quantity:    quantity,
		MinStock:    minStock,
		MaxStock:    maxStock,
		Location:    location,
		LastUpdated: time.Now(),
	}, nil
}

// NewMovement cria um movimento a partir das quantidades anterior e nova
func NewMovement(productID string, movementType MovementType, previous, current int, reason, referenceID string) *Movement {
	return &Movement{
		ID:               uuid.New().String(),
		ProductID:        productID,
		MovementType:     movementType,
		Quantity:         current - previous,
		PreviousQuantity: previous,
		NewQuantity:      current,
		Reason:           reason,
		ReferenceID:      referenceID,
		CreatedAt:        time.Now(),
	}
}

// InitialMovement cria o movimento de entrada do estoque inicial
func (i *Inventory) InitialMovement() *Movement {
	return NewMovement(i.ProductID, MovementIn, 0, i.Quantity, "Estoque inicial", "")
}

// Overwrite sobrescreve os dados do registro (upsert sobre registro
// existente). Retorna um movimento de ajuste apenas se a quantidade mudou.
func (i *Inventory) Overwrite(quantity, minStock, maxStock int, location string) (*Movement, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	previous := i.Quantity
	i.Quantity = quantity
	i.MinStock = minStock
	i.MaxStock = maxStock
	i.Location = location
	i.LastUpdated = time.Now()

	if previous == quantity {
		return nil, nil
	}
	return NewMovement(i.ProductID, MovementAdjustment, previous, quantity, "Ajuste manual de estoque", ""), nil
}

// AdjustTo define a quantidade final absoluta do estoque, registrando um
// movimento de ajuste com o delta assinado e a razão informada
func (i *Inventory) AdjustTo(quantity int, reason string) (*Movement, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	previous := i.Quantity
	i.Quantity = quantity
	i.LastUpdated = time.Now()

	return NewMovement(i.ProductID, MovementAdjustment, previous, quantity, reason, ""), nil
}

// IsLowStock indica se o estoque está no limite mínimo ou abaixo dele
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}
