package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrInvalidPrice = errors.New("preço deve ser maior ou igual a zero")
)

// Product representa um item do catálogo de um tenant
type Product struct {
	ID          string    `json:"id"`          // ID do Produto
	TenantID    string    `json:"tenant_id"`   // ID do Tenant
	Name        string    `json:"name"`        // Nome do Produto
	Description string    `json:"description"` // Descrição
	Price       float64   `json:"price"`       // Preço unitário
	CreatedAt   time.Time `json:"created_at"`  // Data de Criação
	UpdatedAt   time.Time `json:"updated_at"`  // Data de Atualização
}

// NewProduct cria um novo produto
func NewProduct(tenantID, name, description string, price float64) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados do produto
func (p *Product) Update(name, description string, price float64) error {
	if name == "" {
		return ErrEmptyName
	}

	if price < 0 {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now()

	return nil
}
