package tenant

import (
	"context"
)

// Repository define a interface para operações de repositório de tenants
type Repository interface {
	// Create cria um novo tenant
	Create(ctx context.Context, t *Tenant) error

	// FindByID busca um tenant pelo ID (inclui removidos)
	FindByID(ctx context.Context, id string) (*Tenant, error)

	// FindByDocument busca um tenant pelo documento
	FindByDocument(ctx context.Context, document string) (*Tenant, error)

	// List lista os tenants com paginação (exclui removidos)
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// ListAll lista os tenants incluindo os removidos (console de plataforma)
	ListAll(ctx context.Context, limit, offset int) ([]*Tenant, error)

	// Update atualiza os dados de um tenant existente
	Update(ctx context.Context, t *Tenant) error

	// UpdateStatus atualiza o status de um tenant
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdatePlan atualiza o plano e os limites de um tenant
	UpdatePlan(ctx context.Context, id string, plan Plan, limits Limits) error

	// SoftDelete marca o tenant como removido
	SoftDelete(ctx context.Context, id string) error

	// Restore desfaz o soft delete de um tenant
	Restore(ctx context.Context, id string) error

	// Count conta os tenants não removidos
	Count(ctx context.Context) (int, error)

	// Exists verifica se um tenant existe e não foi removido
	Exists(ctx context.Context, id string) (bool, error)

	// SetFeatureFlag habilita/desabilita uma funcionalidade do tenant
	SetFeatureFlag(ctx context.Context, tenantID, feature string, enabled bool) error

	// ListFeatureFlags lista as funcionalidades configuradas do tenant
	ListFeatureFlags(ctx context.Context, tenantID string) ([]*FeatureFlag, error)
}
