package dto

import (
	"time"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
)

// InventoryRequest representa a requisição de criação/sobrescrita de estoque
type InventoryRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
	MinStock  int    `json:"min_stock" binding:"min=0"`
	MaxStock  int    `json:"max_stock" binding:"min=0"`
	Location  string `json:"location"`
}

// InventoryUpdateRequest representa a atualização parcial de um registro de
// estoque; mudanças de quantidade geram movimento de ajuste
type InventoryUpdateRequest struct {
	Quantity *int    `json:"quantity"`
	MinStock *int    `json:"min_stock"`
	MaxStock *int    `json:"max_stock"`
	Location *string `json:"location"`
}

// InventoryAdjustRequest representa o ajuste direto de quantidade
type InventoryAdjustRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// InventoryResponse representa a resposta de estoque
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"min_stock"`
	MaxStock    int       `json:"max_stock"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
}

// InventoryWithProductResponse inclui os dados do produto na listagem
type InventoryWithProductResponse struct {
	InventoryResponse
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	LowStock     bool    `json:"low_stock"`
}

// MovementResponse representa a resposta de movimento de estoque
type MovementResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	MovementType     string    `json:"movement_type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Reason           string    `json:"reason"`
	ReferenceID      string    `json:"reference_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToInventoryResponse converte a entidade para o DTO de resposta
func ToInventoryResponse(inv *inventory.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    inv.Quantity,
		MinStock:    inv.MinStock,
		MaxStock:    inv.MaxStock,
		Location:    inv.Location,
		LastUpdated: inv.LastUpdated,
	}
}

// ToInventoryWithProductResponse converte o registro com dados do produto
func ToInventoryWithProductResponse(wp *inventory.WithProduct) InventoryWithProductResponse {
	return InventoryWithProductResponse{
		InventoryResponse: ToInventoryResponse(&wp.Inventory),
		ProductName:       wp.ProductName,
		ProductPrice:      wp.ProductPrice,
		LowStock:          wp.IsLowStock(),
	}
}

// ToMovementResponse converte a entidade de movimento
func ToMovementResponse(m *inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:               m.ID,
		ProductID:        m.ProductID,
		MovementType:     string(m.MovementType),
		Quantity:         m.Quantity,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		Reason:           m.Reason,
		ReferenceID:      m.ReferenceID,
		CreatedAt:        m.CreatedAt,
	}
}

// ToMovementResponseList converte uma lista de movimentos
func ToMovementResponseList(movements []*inventory.Movement) []MovementResponse {
	result := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		result = append(result, ToMovementResponse(m))
	}
	return result
}
