package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID dentro do tenant
	FindByID(ctx context.Context, tenantID, id string) (*Product, error)

	// List lista os produtos de um tenant com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Product, error)

	// FindByName busca produtos pelo nome (busca parcial)
	FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, tenantID, id string) error

	// CountByTenant conta quantos produtos existem para um tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
