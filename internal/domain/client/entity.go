package client

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyPhone   = errors.New("telefone não pode ser vazio")
	ErrInvalidPhone = errors.New("telefone inválido")
)

// phonePattern valida o formato local de telefone (0 seguido de 9 dígitos)
var phonePattern = regexp.MustCompile(`^0\d{9}$`)

// Status representa o estado do cliente
type Status string

const (
	StatusOpen   Status = "open"   // Cliente com conta aberta
	StatusClosed Status = "closed" // Cliente com conta encerrada
)

// Client representa um cliente de um tenant
type Client struct {
	ID           string    `json:"id"`            // ID do Cliente
	TenantID     string    `json:"tenant_id"`     // ID do Tenant
	Name         string    `json:"name"`          // Nome do Cliente
	PhoneNumber  string    `json:"phone_number"`  // Telefone (login, único por tenant)
	Email        string    `json:"email"`         // Email de contato
	Status       Status    `json:"status"`        // Status do Cliente
	TotalBalance float64   `json:"total_balance"` // Saldo devedor em cache, mantido pelo ledger
	Notes        string    `json:"notes"`         // Observações
	CreatedAt    time.Time `json:"created_at"`    // Data de Criação
	UpdatedAt    time.Time `json:"updated_at"`    // Data de Atualização
}

// NewClient cria um novo cliente
func NewClient(tenantID, name, phoneNumber string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if phoneNumber == "" {
		return nil, ErrEmptyPhone
	}

	if !ValidPhone(phoneNumber) {
		return nil, ErrInvalidPhone
	}

	now := time.Now()
	return &Client{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        name,
		PhoneNumber: phoneNumber,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ValidPhone verifica se o telefone está no formato local esperado
func ValidPhone(phoneNumber string) bool {
	return phonePattern.MatchString(phoneNumber)
}

// IsOpen verifica se a conta do cliente está aberta
func (c *Client) IsOpen() bool {
	return c.Status == StatusOpen
}

// Close encerra a conta do cliente
func (c *Client) Close() {
	c.Status = StatusClosed
	c.UpdatedAt = time.Now()
}

// Reopen reabre a conta do cliente
func (c *Client) Reopen() {
	c.Status = StatusOpen
	c.UpdatedAt = time.Now()
}

// Update atualiza os dados cadastrais do cliente
func (c *Client) Update(name, phoneNumber, email, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	if !ValidPhone(phoneNumber) {
		return ErrInvalidPhone
	}

	c.Name = name
	c.PhoneNumber = phoneNumber
	c.Email = email
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
