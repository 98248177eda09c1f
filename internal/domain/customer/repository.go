package customer

import (
	"context"
)

// Filter define os filtros de listagem de clientes
type Filter struct {
	Search string // Substring em nome, email ou documento
	Active string // "true" (padrão), "false" ou "all"
	Skip   int
	Limit  int
}

// Repository define a interface do repositório de clientes
type Repository interface {
	// Create persiste um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// FindByEmail busca um cliente pelo email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// FindByDocument busca um cliente pelo documento (CPF/CNPJ)
	FindByDocument(ctx context.Context, document string) (*Customer, error)

	// List lista clientes com filtros e paginação
	List(ctx context.Context, f Filter) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Deactivate marca um cliente como inativo
	Deactivate(ctx context.Context, id string) error

	// ExistsByEmail verifica se outro cliente usa o mesmo email
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)

	// ExistsByDocument verifica se outro cliente usa o mesmo documento
	ExistsByDocument(ctx context.Context, document, excludeID string) (bool, error)
}
