package transaction

import (
	"context"
)

// Repository define a interface para operações de repositório do ledger.
// Transações são imutáveis: não há Update nem Delete.
type Repository interface {
	// Create insere um novo lançamento
	Create(ctx context.Context, t *Transaction) error

	// FindByID busca um lançamento pelo ID dentro do tenant
	FindByID(ctx context.Context, tenantID, id string) (*Transaction, error)

	// List lista os lançamentos de um tenant com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Transaction, error)

	// ListByClient lista os lançamentos de um cliente
	ListByClient(ctx context.Context, tenantID, clientID string, limit, offset int) ([]*Transaction, error)

	// ListByInvoice lista os lançamentos vinculados a uma fatura
	ListByInvoice(ctx context.Context, tenantID, invoiceID string) ([]*Transaction, error)

	// SumPaymentsByInvoice soma os pagamentos vinculados a uma fatura
	SumPaymentsByInvoice(ctx context.Context, tenantID, invoiceID string) (float64, error)

	// SumPaymentsByClient soma os pagamentos de um cliente
	SumPaymentsByClient(ctx context.Context, tenantID, clientID string) (float64, error)

	// SumPaymentsByTenant soma todos os pagamentos do tenant
	SumPaymentsByTenant(ctx context.Context, tenantID string) (float64, error)

	// SumPaymentsByTenantSince soma os pagamentos recebidos a partir de uma data
	SumPaymentsByTenantSince(ctx context.Context, tenantID string, since int64) (float64, error)
}
