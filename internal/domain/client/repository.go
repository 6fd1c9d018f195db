package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID dentro do tenant
	FindByID(ctx context.Context, tenantID, id string) (*Client, error)

	// FindByPhone busca um cliente pelo telefone dentro do tenant
	FindByPhone(ctx context.Context, tenantID, phoneNumber string) (*Client, error)

	// FindTenantsByPhone retorna os IDs de todos os tenants que possuem
	// um cliente com o telefone informado
	FindTenantsByPhone(ctx context.Context, phoneNumber string) ([]string, error)

	// List lista os clientes de um tenant com paginação
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Client, error)

	// FindByName busca clientes pelo nome (busca parcial)
	FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// UpdateStatus atualiza o status de um cliente
	UpdateStatus(ctx context.Context, tenantID, id string, status Status) error

	// Delete remove um cliente (cascata para faturas e transações)
	Delete(ctx context.Context, tenantID, id string) error

	// CountByTenant conta quantos clientes existem para um tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)

	// ExistsByPhone verifica se já existe cliente com o telefone no tenant
	ExistsByPhone(ctx context.Context, tenantID, phoneNumber string) (bool, error)
}
