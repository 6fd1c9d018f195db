package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicatePhone = errors.New("cliente com mesmo telefone já existe neste tenant")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

const clientColumns = `id, tenant_id, name, phone_number, email, status,
	total_balance, notes, created_at, updated_at`

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	// Verificar se já existe um cliente com o mesmo telefone no tenant
	exists, err := r.ExistsByPhone(ctx, c.TenantID, c.PhoneNumber)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}
	if exists {
		return ErrClientDuplicatePhone
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO clients (
			id, tenant_id, name, phone_number, email, status,
			total_balance, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		c.ID, c.TenantID, c.Name, c.PhoneNumber, c.Email, c.Status,
		c.TotalBalance, c.Notes, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicatePhone
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, tenantID, id string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)

	return scanClient(row)
}

// FindByPhone implementa client.Repository.FindByPhone
func (r *ClientRepository) FindByPhone(ctx context.Context, tenantID, phoneNumber string) (*client.Client, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE tenant_id = $1 AND phone_number = $2`,
		tenantID, phoneNumber)

	return scanClient(row)
}

// FindTenantsByPhone implementa client.Repository.FindTenantsByPhone
func (r *ClientRepository) FindTenantsByPhone(ctx context.Context, phoneNumber string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT tenant_id FROM clients WHERE phone_number = $1",
		phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tenants por telefone: %w", err)
	}
	defer rows.Close()

	tenantIDs := make([]string, 0)
	for rows.Next() {
		var tenantID string
		if err := rows.Scan(&tenantID); err != nil {
			return nil, fmt.Errorf("erro ao ler tenant: %w", err)
		}
		tenantIDs = append(tenantIDs, tenantID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tenantIDs, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+` FROM clients
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return scanClientRows(rows)
}

// FindByName implementa client.Repository.FindByName
func (r *ClientRepository) FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+` FROM clients
		WHERE tenant_id = $1 AND name ILIKE $2
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		tenantID, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return scanClientRows(rows)
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clients SET
			name = $1, phone_number = $2, email = $3, status = $4,
			notes = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`,
		c.Name, c.PhoneNumber, c.Email, c.Status, c.Notes, c.UpdatedAt,
		c.ID, c.TenantID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicatePhone
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// UpdateStatus implementa client.Repository.UpdateStatus
func (r *ClientRepository) UpdateStatus(ctx context.Context, tenantID, id string, status client.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE clients SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4",
		status, time.Now(), tenantID, id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM clients WHERE tenant_id = $1 AND id = $2",
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// CountByTenant implementa client.Repository.CountByTenant
func (r *ClientRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM clients WHERE tenant_id = $1",
		tenantID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// ExistsByPhone implementa client.Repository.ExistsByPhone
func (r *ClientRepository) ExistsByPhone(ctx context.Context, tenantID, phoneNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clients WHERE tenant_id = $1 AND phone_number = $2)",
		tenantID, phoneNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}

	return exists, nil
}

// scanClient lê um cliente de uma linha de resultado
func scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client

	err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.PhoneNumber, &c.Email, &c.Status,
		&c.TotalBalance, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// scanClientRows processa resultados de consultas que retornam múltiplos clientes
func scanClientRows(rows pgx.Rows) ([]*client.Client, error) {
	clients := make([]*client.Client, 0)

	for rows.Next() {
		var c client.Client

		err := rows.Scan(
			&c.ID, &c.TenantID, &c.Name, &c.PhoneNumber, &c.Email, &c.Status,
			&c.TotalBalance, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}

		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return clients, nil
}
