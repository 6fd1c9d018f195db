package invoice

import (
	"context"
)

// Repository define a interface para operações de repositório de faturas
type Repository interface {
	// Create cria uma nova fatura
	Create(ctx context.Context, i *Invoice) error

	// FindByID busca uma fatura pelo ID dentro do tenant
	FindByID(ctx context.Context, tenantID, id string) (*Invoice, error)

	// List lista as faturas de um tenant com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Invoice, error)

	// ListByClient lista as faturas de um cliente
	ListByClient(ctx context.Context, tenantID, clientID string) ([]*Invoice, error)

	// ListByStatus lista as faturas de um tenant por status
	ListByStatus(ctx context.Context, tenantID string, status Status, limit, offset int) ([]*Invoice, error)

	// Update atualiza os dados de uma fatura existente
	Update(ctx context.Context, i *Invoice) error

	// UpdateStatus atualiza o status de uma fatura
	UpdateStatus(ctx context.Context, tenantID, id string, status Status) error

	// Delete remove uma fatura
	Delete(ctx context.Context, tenantID, id string) error

	// CountByTenant conta as faturas de um tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)

	// CountByTenantSince conta as faturas criadas a partir de uma data
	// (usado na checagem de limite mensal do plano)
	CountByTenantSince(ctx context.Context, tenantID string, since int64) (int, error)

	// SumAmountByClient soma o valor de todas as faturas de um cliente
	SumAmountByClient(ctx context.Context, tenantID, clientID string) (float64, error)

	// SumAmountByTenant soma o valor de todas as faturas do tenant
	SumAmountByTenant(ctx context.Context, tenantID string) (float64, error)

	// CountByStatus conta as faturas do tenant agrupadas por status
	CountByStatus(ctx context.Context, tenantID string) (map[Status]int, error)
}
