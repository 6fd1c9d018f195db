package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, tenant_id, client_id, name, email, password, role,
	status, last_login_at, created_at, updated_at`

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (
			id, tenant_id, client_id, name, email, password, role,
			status, last_login_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		u.ID, u.TenantID, nullString(u.ClientID), u.Name, u.Email, u.Password,
		u.Role, u.Status, u.LastLoginAt, u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	return scanUser(row)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE tenant_id = $1 AND email = $2`,
		tenantID, email)

	return scanUser(row)
}

// FindByExactEmail implementa user.Repository.FindByExactEmail
func (r *UserRepository) FindByExactEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	return scanUser(row)
}

// FindByEmails implementa user.Repository.FindByEmails
func (r *UserRepository) FindByEmails(ctx context.Context, emails []string) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ANY($1)`, emails)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuários por email: %w", err)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// FindByEmailPrefix implementa user.Repository.FindByEmailPrefix
func (r *UserRepository) FindByEmailPrefix(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE email LIKE $1`,
		escapeLike(prefix)+"%"+escapeLike(suffix))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuários por padrão de email: %w", err)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// escapeLike neutraliza os metacaracteres de LIKE para que prefixo e
// sufixo casem literalmente
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// ListByTenant implementa user.Repository.ListByTenant
func (r *UserRepository) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	return scanUserRows(rows)
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET
			name = $1, email = $2, password = $3, role = $4, status = $5,
			client_id = $6, updated_at = $7
		WHERE id = $8`,
		u.Name, u.Email, u.Password, u.Role, u.Status, nullString(u.ClientID),
		time.Now(), u.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePassword implementa user.Repository.UpdatePassword
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE users SET password = $1, updated_at = $2 WHERE id = $3",
		hashedPassword, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar senha: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE users SET last_login_at = $1 WHERE id = $2",
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao registrar último login: %w", err)
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountByTenant implementa user.Repository.CountByTenant
func (r *UserRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE tenant_id = $1",
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	return count, nil
}

// UpsertProfile implementa user.Repository.UpsertProfile
func (r *UserRepository) UpsertProfile(ctx context.Context, p *user.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, tenant_id, name, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET name = $3, phone_number = $4, updated_at = $6`,
		p.UserID, p.TenantID, p.Name, p.PhoneNumber, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar perfil: %w", err)
	}

	return nil
}

// DeleteProfile implementa user.Repository.DeleteProfile
func (r *UserRepository) DeleteProfile(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM profiles WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("erro ao excluir perfil: %w", err)
	}

	return nil
}

// UpsertRole implementa user.Repository.UpsertRole
func (r *UserRepository) UpsertRole(ctx context.Context, ra *user.RoleAssignment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_roles (user_id, tenant_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tenant_id)
		DO UPDATE SET role = $3`,
		ra.UserID, ra.TenantID, ra.Role, ra.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar papel do usuário: %w", err)
	}

	return nil
}

// scanUser lê um usuário de uma linha de resultado
func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var clientID *string

	err := row.Scan(
		&u.ID, &u.TenantID, &clientID, &u.Name, &u.Email, &u.Password,
		&u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	if clientID != nil {
		u.ClientID = *clientID
	}

	return &u, nil
}

// scanUserRows processa resultados de consultas que retornam múltiplos usuários
func scanUserRows(rows pgx.Rows) ([]*user.User, error) {
	users := make([]*user.User, 0)

	for rows.Next() {
		var u user.User
		var clientID *string

		err := rows.Scan(
			&u.ID, &u.TenantID, &clientID, &u.Name, &u.Email, &u.Password,
			&u.Role, &u.Status, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}

		if clientID != nil {
			u.ClientID = *clientID
		}

		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return users, nil
}
