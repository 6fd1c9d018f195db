package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("valor da transação deve ser maior que zero")
	ErrEmptyClient   = errors.New("cliente não informado")
	ErrInvalidType   = errors.New("tipo de transação inválido")
)

// Type representa o tipo da transação no ledger
type Type string

const (
	TypeSale    Type = "sale"    // Venda: aumenta o que o cliente deve
	TypePayment Type = "payment" // Pagamento: reduz o que o cliente deve
)

// Transaction representa um lançamento imutável do ledger
type Transaction struct {
	ID        string    `json:"id"`         // ID da Transação
	TenantID  string    `json:"tenant_id"`  // ID do Tenant
	ClientID  string    `json:"client_id"`  // ID do Cliente
	InvoiceID string    `json:"invoice_id"` // ID da Fatura (opcional em vendas antigas)
	Type      Type      `json:"type"`       // Tipo (sale/payment)
	Amount    float64   `json:"amount"`     // Valor
	Date      time.Time `json:"date"`       // Data do lançamento
	Notes     string    `json:"notes"`      // Observações livres
	CreatedAt time.Time `json:"created_at"` // Data de Criação
}

// NewTransaction cria um novo lançamento do ledger
func NewTransaction(tenantID, clientID, invoiceID string, txType Type, amount float64, date time.Time, notes string) (*Transaction, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if txType != TypeSale && txType != TypePayment {
		return nil, ErrInvalidType
	}

	if date.IsZero() {
		date = time.Now()
	}

	return &Transaction{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ClientID:  clientID,
		InvoiceID: invoiceID,
		Type:      txType,
		Amount:    amount,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}

// IsPayment verifica se a transação é um pagamento
func (t *Transaction) IsPayment() bool {
	return t.Type == TypePayment
}
