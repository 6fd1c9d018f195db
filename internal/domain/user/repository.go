package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria uma nova identidade de login
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email dentro do tenant
	FindByEmail(ctx context.Context, tenantID, email string) (*User, error)

	// FindByExactEmail busca um usuário pelo email em qualquer tenant
	// (emails sintéticos já carregam o tenant no próprio endereço)
	FindByExactEmail(ctx context.Context, email string) (*User, error)

	// FindByEmails busca todos os usuários cujos emails estão na lista
	FindByEmails(ctx context.Context, emails []string) ([]*User, error)

	// FindByEmailPrefix busca usuários cujo email começa com o prefixo e
	// termina com o sufixo informados (fan-out dos formatos sintéticos)
	FindByEmailPrefix(ctx context.Context, prefix, suffix string) ([]*User, error)

	// ListByTenant lista os usuários de um tenant
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário
	Update(ctx context.Context, u *User) error

	// UpdatePassword atualiza apenas o hash de senha do usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// UpdateLastLogin registra o último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error

	// Delete remove uma identidade (usado no rollback compensatório)
	Delete(ctx context.Context, id string) error

	// CountByTenant conta os usuários de um tenant
	CountByTenant(ctx context.Context, tenantID string) (int, error)

	// UpsertProfile cria ou atualiza o perfil de uma identidade
	UpsertProfile(ctx context.Context, p *Profile) error

	// DeleteProfile remove o perfil (rollback compensatório)
	DeleteProfile(ctx context.Context, userID string) error

	// UpsertRole cria ou atualiza a atribuição de papel de uma identidade.
	// O papel é o último passo do provisionamento, então o rollback
	// compensatório nunca precisa removê-lo.
	UpsertRole(ctx context.Context, r *RoleAssignment) error
}
