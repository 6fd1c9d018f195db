package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/product"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
)

var (
	// ErrOverpayment ocorre quando a política reject recusa um pagamento
	// acima do saldo restante da fatura
	ErrOverpayment = errors.New("pagamento excede o saldo restante da fatura")

	// ErrInvoiceAlreadyPaid ocorre quando a política reject recusa um
	// pagamento contra fatura já quitada
	ErrInvoiceAlreadyPaid = errors.New("fatura já está quitada")
)

// SaleInput agrupa os dados para registrar uma venda
type SaleInput struct {
	TenantID string
	ClientID string

	// Produto existente (opcional) ou produto novo criado junto com a venda
	ProductID  string
	NewProduct *product.Product

	Amount  float64
	DueDate *time.Time
	Notes   string
	Date    time.Time
}

// SaleResult é o resultado de uma venda registrada
type SaleResult struct {
	Invoice     *invoice.Invoice
	Transaction *transaction.Transaction
	Product     *product.Product // preenchido quando criado inline
}

// PaymentInput agrupa os dados para registrar um pagamento
type PaymentInput struct {
	TenantID  string
	InvoiceID string
	Amount    float64
	Date      time.Time
	Notes     string

	// RejectOverpayment ativa a política reject (recusa pagamento excedente
	// e pagamento contra fatura quitada)
	RejectOverpayment bool
}

// PaymentResult é o resultado da reconciliação de um pagamento
type PaymentResult struct {
	Transaction *transaction.Transaction
	Invoice     *invoice.Invoice
	TotalPaid   float64 // soma de todos os pagamentos da fatura após este
	Remaining   float64 // saldo restante da fatura
	NewBalance  float64 // novo saldo devedor do cliente
}

// Repository define as operações atômicas do ledger. Cada operação executa
// todas as escritas relacionadas dentro de uma única transação de banco:
// ou todas persistem, ou nenhuma.
type Repository interface {
	// RecordSale cria (opcionalmente o produto,) a fatura e a transação de
	// venda pareada, e incrementa o saldo em cache do cliente
	RecordSale(ctx context.Context, in SaleInput) (*SaleResult, error)

	// RecordPayment insere o pagamento, recalcula o total pago da fatura
	// dentro da mesma transação de banco, deriva o novo status e atualiza
	// o saldo em cache do cliente
	RecordPayment(ctx context.Context, in PaymentInput) (*PaymentResult, error)
}
