package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
)

// InvoiceRequest representa a requisição de atualização de fatura
type InvoiceRequest struct {
	DueDate *time.Time `json:"due_date"`
	Notes   string     `json:"notes"`
}

// InvoiceResponse representa a resposta de fatura
type InvoiceResponse struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	ClientID  string         `json:"client_id"`
	ProductID string         `json:"product_id,omitempty"`
	Number    string         `json:"number"`
	Amount    float64        `json:"amount"`
	Status    invoice.Status `json:"status"`
	DueDate   *time.Time     `json:"due_date"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// InvoiceListResponse representa a resposta de lista de faturas
type InvoiceListResponse struct {
	Items      []InvoiceResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToInvoiceResponse converte uma fatura do domínio para DTO
func ToInvoiceResponse(i *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:        i.ID,
		TenantID:  i.TenantID,
		ClientID:  i.ClientID,
		ProductID: i.ProductID,
		Number:    i.Number,
		Amount:    i.Amount,
		Status:    i.Status,
		DueDate:   i.DueDate,
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToInvoiceListResponse converte uma lista de faturas do domínio para DTO
func ToInvoiceListResponse(invoices []*invoice.Invoice, total, page, size int) *InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = *ToInvoiceResponse(inv)
	}

	return &InvoiceListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
