package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrTenantNotFound     = errors.New("tenant não encontrado")
	ErrTenantDuplicateKey = errors.New("tenant com mesmo documento já existe")
)

// TenantRepository implementa a interface tenant.Repository
type TenantRepository struct {
	db *pgxpool.Pool
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db *pgxpool.Pool) tenant.Repository {
	return &TenantRepository{
		db: db,
	}
}

const tenantColumns = `id, name, document, email, phone, status, plan,
	max_users, max_clients, max_invoices_per_month, max_products,
	created_at, updated_at, deleted_at`

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tenants (
			id, name, document, email, phone, status, plan,
			max_users, max_clients, max_invoices_per_month, max_products,
			created_at, updated_at, deleted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`,
		t.ID, t.Name, t.Document, t.Email, t.Phone, t.Status, t.Plan,
		t.Limits.MaxUsers, t.Limits.MaxClients, t.Limits.MaxInvoicesPerMonth,
		t.Limits.MaxProducts, t.CreatedAt, t.UpdatedAt, t.DeletedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTenantDuplicateKey
		}
		return fmt.Errorf("erro ao criar tenant: %w", err)
	}

	return nil
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id)

	return scanTenant(row)
}

// FindByDocument implementa tenant.Repository.FindByDocument
func (r *TenantRepository) FindByDocument(ctx context.Context, document string) (*tenant.Tenant, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE document = $1 AND deleted_at IS NULL`,
		document)

	return scanTenant(row)
}

// List implementa tenant.Repository.List
func (r *TenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tenantColumns+` FROM tenants
		WHERE deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tenants: %w", err)
	}
	defer rows.Close()

	return scanTenantRows(rows)
}

// ListAll implementa tenant.Repository.ListAll
func (r *TenantRepository) ListAll(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tenantColumns+` FROM tenants
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tenants: %w", err)
	}
	defer rows.Close()

	return scanTenantRows(rows)
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tenants SET
			name = $1, document = $2, email = $3, phone = $4, status = $5,
			plan = $6, max_users = $7, max_clients = $8,
			max_invoices_per_month = $9, max_products = $10, updated_at = $11
		WHERE id = $12`,
		t.Name, t.Document, t.Email, t.Phone, t.Status, t.Plan,
		t.Limits.MaxUsers, t.Limits.MaxClients, t.Limits.MaxInvoicesPerMonth,
		t.Limits.MaxProducts, t.UpdatedAt, t.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTenantDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// UpdateStatus implementa tenant.Repository.UpdateStatus
func (r *TenantRepository) UpdateStatus(ctx context.Context, id string, status tenant.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE tenants SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// UpdatePlan implementa tenant.Repository.UpdatePlan
func (r *TenantRepository) UpdatePlan(ctx context.Context, id string, plan tenant.Plan, limits tenant.Limits) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tenants SET plan = $1, max_users = $2, max_clients = $3,
			max_invoices_per_month = $4, max_products = $5, updated_at = $6
		WHERE id = $7`,
		plan, limits.MaxUsers, limits.MaxClients, limits.MaxInvoicesPerMonth,
		limits.MaxProducts, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar plano do tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// SoftDelete implementa tenant.Repository.SoftDelete
func (r *TenantRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	result, err := r.db.Exec(ctx,
		"UPDATE tenants SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		now, id)

	if err != nil {
		return fmt.Errorf("erro ao remover tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Restore implementa tenant.Repository.Restore
func (r *TenantRepository) Restore(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE tenants SET deleted_at = NULL, updated_at = $1 WHERE id = $2",
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao restaurar tenant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// Count implementa tenant.Repository.Count
func (r *TenantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM tenants WHERE deleted_at IS NULL").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar tenants: %w", err)
	}

	return count, nil
}

// Exists implementa tenant.Repository.Exists
func (r *TenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1 AND deleted_at IS NULL)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do tenant: %w", err)
	}

	return exists, nil
}

// SetFeatureFlag implementa tenant.Repository.SetFeatureFlag
func (r *TenantRepository) SetFeatureFlag(ctx context.Context, tenantID, feature string, enabled bool) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tenant_feature_flags (tenant_id, feature, enabled, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, feature)
		DO UPDATE SET enabled = $3, updated_at = $4`,
		tenantID, feature, enabled, time.Now())

	if err != nil {
		return fmt.Errorf("erro ao configurar feature flag: %w", err)
	}

	return nil
}

// ListFeatureFlags implementa tenant.Repository.ListFeatureFlags
func (r *TenantRepository) ListFeatureFlags(ctx context.Context, tenantID string) ([]*tenant.FeatureFlag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tenant_id, feature, enabled, updated_at
		FROM tenant_feature_flags
		WHERE tenant_id = $1
		ORDER BY feature ASC`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar feature flags: %w", err)
	}
	defer rows.Close()

	flags := make([]*tenant.FeatureFlag, 0)
	for rows.Next() {
		var f tenant.FeatureFlag
		if err := rows.Scan(&f.TenantID, &f.Feature, &f.Enabled, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler feature flag: %w", err)
		}
		flags = append(flags, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return flags, nil
}

// scanTenant lê um tenant de uma linha de resultado
func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant

	err := row.Scan(
		&t.ID, &t.Name, &t.Document, &t.Email, &t.Phone, &t.Status, &t.Plan,
		&t.Limits.MaxUsers, &t.Limits.MaxClients, &t.Limits.MaxInvoicesPerMonth,
		&t.Limits.MaxProducts, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tenant: %w", err)
	}

	return &t, nil
}

// scanTenantRows processa resultados de consultas que retornam múltiplos tenants
func scanTenantRows(rows pgx.Rows) ([]*tenant.Tenant, error) {
	tenants := make([]*tenant.Tenant, 0)

	for rows.Next() {
		var t tenant.Tenant

		err := rows.Scan(
			&t.ID, &t.Name, &t.Document, &t.Email, &t.Phone, &t.Status, &t.Plan,
			&t.Limits.MaxUsers, &t.Limits.MaxClients, &t.Limits.MaxInvoicesPerMonth,
			&t.Limits.MaxProducts, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler tenant: %w", err)
		}

		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tenants, nil
}
