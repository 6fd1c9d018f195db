package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/client"
)

// ClientRequest representa a requisição de criação/atualização de cliente
type ClientRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	Name         string        `json:"name"`
	PhoneNumber  string        `json:"phone_number"`
	Email        string        `json:"email"`
	Status       client.Status `json:"status"`
	TotalBalance float64       `json:"total_balance"`
	Notes        string        `json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ClientBalanceResponse representa o saldo devedor detalhado de um cliente
type ClientBalanceResponse struct {
	ClientID     string  `json:"client_id"`
	InvoiceTotal float64 `json:"invoice_total"`
	PaymentTotal float64 `json:"payment_total"`
	Outstanding  float64 `json:"outstanding"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToClientResponse converte um cliente do domínio para DTO
func ToClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		TenantID:     c.TenantID,
		Name:         c.Name,
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Status:       c.Status,
		TotalBalance: c.TotalBalance,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio para DTO
func ToClientListResponse(clients []*client.Client, total, page, size int) *ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = *ToClientResponse(c)
	}

	return &ClientListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
