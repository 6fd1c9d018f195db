package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
)

// SaleRequest representa a requisição de registro de venda.
// O produto pode ser referenciado pelo ID ou criado junto com a venda.
type SaleRequest struct {
	ClientID string `json:"client_id" binding:"required"`

	ProductID          string  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	ProductPrice       float64 `json:"product_price"`

	Amount  float64    `json:"amount" binding:"required,gt=0"`
	DueDate *time.Time `json:"due_date"`
	Date    *time.Time `json:"date"`
	Notes   string     `json:"notes"`
}

// SaleResponse representa a resposta de venda registrada
type SaleResponse struct {
	Invoice     InvoiceResponse     `json:"invoice"`
	Transaction TransactionResponse `json:"transaction"`
	Product     *ProductResponse    `json:"product,omitempty"`
}

// PaymentRequest representa a requisição de registro de pagamento
type PaymentRequest struct {
	Amount float64    `json:"amount" binding:"required,gt=0"`
	Date   *time.Time `json:"date"`
	Notes  string     `json:"notes"`
}

// PaymentResponse representa a resposta de pagamento reconciliado
type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Invoice     InvoiceResponse     `json:"invoice"`
	TotalPaid   float64             `json:"total_paid"`
	Remaining   float64             `json:"remaining"`
	NewBalance  float64             `json:"new_balance"`
}

// TransactionResponse representa a resposta de lançamento do ledger
type TransactionResponse struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	ClientID  string           `json:"client_id"`
	InvoiceID string           `json:"invoice_id,omitempty"`
	Type      transaction.Type `json:"type"`
	Amount    float64          `json:"amount"`
	Date      time.Time        `json:"date"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"created_at"`
}

// TransactionListResponse representa a resposta de lista de lançamentos
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

// ToTransactionResponse converte um lançamento do domínio para DTO
func ToTransactionResponse(t *transaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		TenantID:  t.TenantID,
		ClientID:  t.ClientID,
		InvoiceID: t.InvoiceID,
		Type:      t.Type,
		Amount:    t.Amount,
		Date:      t.Date,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
}

// ToTransactionListResponse converte uma lista de lançamentos do domínio para DTO
func ToTransactionListResponse(transactions []*transaction.Transaction, total, page, size int) *TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = *ToTransactionResponse(t)
	}

	return &TransactionListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}

// ToSaleResponse converte o resultado de uma venda para DTO
func ToSaleResponse(r *ledger.SaleResult) *SaleResponse {
	resp := &SaleResponse{
		Invoice:     *ToInvoiceResponse(r.Invoice),
		Transaction: *ToTransactionResponse(r.Transaction),
	}

	if r.Product != nil {
		resp.Product = ToProductResponse(r.Product)
	}

	return resp
}

// ToPaymentResponse converte o resultado de um pagamento para DTO
func ToPaymentResponse(r *ledger.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		Transaction: *ToTransactionResponse(r.Transaction),
		Invoice:     *ToInvoiceResponse(r.Invoice),
		TotalPaid:   r.TotalPaid,
		Remaining:   r.Remaining,
		NewBalance:  r.NewBalance,
	}
}
