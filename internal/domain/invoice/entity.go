package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("valor da fatura deve ser maior que zero")
	ErrEmptyClient   = errors.New("cliente não informado")
	ErrInvalidStatus = errors.New("status de fatura inválido")
)

// Status representa o estado de pagamento da fatura
type Status string

const (
	StatusPending Status = "pending" // Sem nenhum pagamento
	StatusPartial Status = "partial" // Parcialmente paga
	StatusPaid    Status = "paid"    // Totalmente paga
	StatusOverdue Status = "overdue" // Vencida sem quitação
)

// Invoice representa um valor devido por um cliente
type Invoice struct {
	ID        string     `json:"id"`         // ID da Fatura
	TenantID  string     `json:"tenant_id"`  // ID do Tenant
	ClientID  string     `json:"client_id"`  // ID do Cliente
	ProductID string     `json:"product_id"` // ID do Produto (opcional)
	Number    string     `json:"number"`     // Número da Fatura
	Amount    float64    `json:"amount"`     // Valor devido
	Status    Status     `json:"status"`     // Status de pagamento
	DueDate   *time.Time `json:"due_date"`   // Data de vencimento (opcional)
	Notes     string     `json:"notes"`      // Observações
	CreatedAt time.Time  `json:"created_at"` // Data de Criação
	UpdatedAt time.Time  `json:"updated_at"` // Data de Atualização
}

// NewInvoice cria uma nova fatura com status pendente
func NewInvoice(tenantID, clientID, productID string, amount float64, dueDate *time.Time, notes string) (*Invoice, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	return &Invoice{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ClientID:  clientID,
		ProductID: productID,
		Number:    newNumber(now),
		Amount:    amount,
		Status:    StatusPending,
		DueDate:   dueDate,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// newNumber gera um número de fatura legível baseado na data
func newNumber(now time.Time) string {
	return fmt.Sprintf("FAT-%s-%s", now.Format("20060102"), uuid.New().String()[:8])
}

// IsPaid verifica se a fatura está quitada
func (i *Invoice) IsPaid() bool {
	return i.Status == StatusPaid
}

// IsOverdue verifica se a fatura está vencida sem quitação
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.Status == StatusPaid || i.DueDate == nil {
		return false
	}
	return now.After(*i.DueDate)
}

// ParseStatus converte uma string em Status válido
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPartial, StatusPaid, StatusOverdue:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
