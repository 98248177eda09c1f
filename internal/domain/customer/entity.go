package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do cliente não pode ser vazio")
	ErrInvalidEmail = errors.New("email do cliente é inválido")
)

// Customer representa um cliente do sistema
type Customer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`    // Único quando presente
	Phone     string     `json:"phone"`
	Document  string     `json:"document"` // CPF/CNPJ, único quando presente
	BirthDate *time.Time `json:"birth_date"`
	Gender    string     `json:"gender"`

	// Endereço
	AddressStreet       string `json:"address_street"`
	AddressNumber       string `json:"address_number"`
	AddressComplement   string `json:"address_complement"`
	AddressNeighborhood string `json:"address_neighborhood"`
	AddressCity         string `json:"address_city"`
	AddressState        string `json:"address_state"`
	AddressZipcode      string `json:"address_zipcode"`

	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente ativo
func NewCustomer(name, email, document string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Document:  document,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate verifica os invariantes do cliente após uma atualização parcial
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Deactivate marca o cliente como inativo (soft delete)
func (c *Customer) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// Touch atualiza o timestamp de modificação
func (c *Customer) Touch() {
	c.UpdatedAt = time.Now()
}
