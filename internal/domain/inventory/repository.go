package inventory

import (
	"context"
)

// Filter define os filtros de listagem de estoque
type Filter struct {
	LowStock    bool   // Apenas registros com quantity <= min_stock
	ProductName string // Substring no nome do produto
	Skip        int
	Limit       int
}

// WithProduct é um registro de estoque acompanhado dos dados do produto
type WithProduct struct {
	Inventory
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

// LowStockItem é uma linha do relatório de estoque baixo
type LowStockItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"current_quantity"`
	MinStock    int    `json:"min_stock"`
	MaxStock    int    `json:"max_stock"`
	Location    string `json:"location"`
}

// Summary agrega os números gerais do estoque
type Summary struct {
	TotalProducts  int     `json:"total_products"`  // Produtos ativos
	TotalInventory int     `json:"total_inventory"` // Registros de estoque
	LowStockCount  int     `json:"low_stock_count"`
	TotalValue     float64 `json:"total_value"` // Σ quantity × price (produtos ativos)
}

// Repository define a interface do repositório de estoque
type Repository interface {
	// FindByID busca um registro de estoque pelo ID
	FindByID(ctx context.Context, id string) (*Inventory, error)

	// FindByProduct busca o registro de estoque de um produto
	FindByProduct(ctx context.Context, productID string) (*Inventory, error)

	// Save persiste o registro (insert ou update) e o movimento associado,
	// quando houver, na mesma transação
	Save(ctx context.Context, inv *Inventory, mov *Movement) error

	// List lista registros de estoque com dados do produto
	List(ctx context.Context, f Filter) ([]*WithProduct, error)

	// ListMovements lista os movimentos de um produto, mais recentes primeiro
	ListMovements(ctx context.Context, productID string, skip, limit int) ([]*Movement, error)

	// ListLowStock lista os registros em estoque baixo de produtos ativos
	ListLowStock(ctx context.Context) ([]*LowStockItem, error)

	// Summarize agrega contagens e valor total do estoque
	Summarize(ctx context.Context) (*Summary, error)
}
