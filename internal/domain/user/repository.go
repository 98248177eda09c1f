package user

import (
	"context"
)

// Repository define a interface do repositório de usuários
type Repository interface {
	// Create persiste um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Count conta os usuários cadastrados
	Count(ctx context.Context) (int, error)

	// UpdateLastLogin registra o instante do último login
	UpdateLastLogin(ctx context.Context, id string) error
}
