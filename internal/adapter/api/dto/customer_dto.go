package dto

import (
	"time"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/customer"
)

// CustomerRequest representa a requisição de criação de cliente
type CustomerRequest struct {
	Name                string     `json:"name" binding:"required"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Document            string     `json:"document"`
	AddressStreet       string     `json:"address_street"`
	AddressNumber       string     `json:"address_number"`
	AddressComplement   string     `json:"address_complement"`
	AddressNeighborhood string     `json:"address_neighborhood"`
	AddressCity         string     `json:"address_city"`
	AddressState        string     `json:"address_state"`
	AddressZipcode      string     `json:"address_zipcode"`
	BirthDate           *time.Time `json:"birth_date"`
	Gender              string     `json:"gender"`
	Notes               string     `json:"notes"`
}

// CustomerUpdateRequest representa a atualização parcial de cliente
type CustomerUpdateRequest struct {
	Name                *string    `json:"name"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Document            *string    `json:"document"`
	AddressStreet       *string    `json:"address_street"`
	AddressNumber       *string    `json:"address_number"`
	AddressComplement   *string    `json:"address_complement"`
	AddressNeighborhood *string    `json:"address_neighborhood"`
	AddressCity         *string    `json:"address_city"`
	AddressState        *string    `json:"address_state"`
	AddressZipcode      *string    `json:"address_zipcode"`
	BirthDate           *time.Time `json:"birth_date"`
	Gender              *string    `json:"gender"`
	Notes               *string    `json:"notes"`
	Active              *bool      `json:"active"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Document            string     `json:"document"`
	AddressStreet       string     `json:"address_street"`
	AddressNumber       string     `json:"address_number"`
	AddressComplement   string     `json:"address_complement"`
	AddressNeighborhood string     `json:"address_neighborhood"`
	AddressCity         string     `json:"address_city"`
	AddressState        string     `json:"address_state"`
	AddressZipcode      string     `json:"address_zipcode"`
	BirthDate           *time.Time `json:"birth_date"`
	Gender              string     `json:"gender"`
	Notes               string     `json:"notes"`
	Active              bool       `json:"active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ToCustomerResponse converte a entidade para o DTO de resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		Document:            c.Document,
		AddressStreet:       c.AddressStreet,
		AddressNumber:       c.AddressNumber,
		AddressComplement:   c.AddressComplement,
		AddressNeighborhood: c.AddressNeighborhood,
		AddressCity:         c.AddressCity,
		AddressState:        c.AddressState,
		AddressZipcode:      c.AddressZipcode,
		BirthDate:           c.BirthDate,
		Gender:              c.Gender,
		Notes:               c.Notes,
		Active:              c.Active,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// ToCustomerResponseList converte uma lista de entidades
func ToCustomerResponseList(customers []*customer.Customer) []CustomerResponse {
	result := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, ToCustomerResponse(c))
	}
	return result
}

// Apply aplica os campos presentes da atualização na entidade
func (r CustomerUpdateRequest) Apply(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Document != nil {
		c.Document = *r.Document
	}
	if r.AddressStreet != nil {
		c.AddressStreet = *r.AddressStreet
	}
	if r.AddressNumber != nil {
		c.AddressNumber = *r.AddressNumber
	}
	if r.AddressComplement != nil {
		c.AddressComplement = *r.AddressComplement
	}
	if r.AddressNeighborhood != nil {
		c.AddressNeighborhood = *r.AddressNeighborhood
	}
	if r.AddressCity != nil {
		c.AddressCity = *r.AddressCity
	}
	if r.AddressState != nil {
		c.AddressState = *r.AddressState
	}
	if r.AddressZipcode != nil {
		c.AddressZipcode = *r.AddressZipcode
	}
	if r.BirthDate != nil {
		c.BirthDate = r.BirthDate
	}
	if r.Gender != nil {
		c.Gender = *r.Gender
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
}
