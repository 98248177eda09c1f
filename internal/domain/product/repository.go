package product

import (
	"context"
)

// ActiveFilter controla o filtro de ativos nas listagens
type ActiveFilter string

const (
	ActiveOnly   ActiveFilter = "true"  // Apenas registros ativos (padrão)
	InactiveOnly ActiveFilter = "false" // Apenas registros inativos
	ActiveAll    ActiveFilter = "all"   // Sem filtro de ativo
)

// Filter define os filtros de listagem de produtos
type Filter struct {
	Search   string // Substring em nome ou código de barras
	Category string
	Active   ActiveFilter
	Skip     int
	Limit    int
}

// Repository define a interface do repositório de produtos
type Repository interface {
	// Create persiste um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// List lista produtos com filtros e paginação
	List(ctx context.Context, f Filter) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Deactivate marca um produto como inativo
	Deactivate(ctx context.Context, id string) error

	// ExistsByBarcode verifica se outro produto usa o mesmo código de barras
	ExistsByBarcode(ctx context.Context, barcode, excludeID string) (bool, error)

	// ListCategories lista as categorias distintas dos produtos ativos
	ListCategories(ctx context.Context) ([]string, error)
}
