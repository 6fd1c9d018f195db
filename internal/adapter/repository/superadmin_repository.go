package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/superadmin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSuperAdminNotFound = errors.New("super admin não encontrado")
)

// SuperAdminRepository implementa a interface superadmin.Repository
type SuperAdminRepository struct {
	db *pgxpool.Pool
}

// NewSuperAdminRepository cria uma nova instância de SuperAdminRepository
func NewSuperAdminRepository(db *pgxpool.Pool) superadmin.Repository {
	return &SuperAdminRepository{
		db: db,
	}
}

// FindByUserID implementa superadmin.Repository.FindByUserID
func (r *SuperAdminRepository) FindByUserID(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
	var sa superadmin.SuperAdmin

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, email, active, created_at, updated_at
		FROM super_admins WHERE user_id = $1`,
		userID).Scan(
		&sa.ID, &sa.UserID, &sa.Name, &sa.Email, &sa.Active, &sa.CreatedAt, &sa.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSuperAdminNotFound
		}
		return nil, fmt.Errorf("erro ao buscar super admin: %w", err)
	}

	return &sa, nil
}

// Create implementa superadmin.Repository.Create
func (r *SuperAdminRepository) Create(ctx context.Context, sa *superadmin.SuperAdmin) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO super_admins (id, user_id, name, email, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sa.ID, sa.UserID, sa.Name, sa.Email, sa.Active, sa.CreatedAt, sa.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar super admin: %w", err)
	}

	return nil
}

// List implementa superadmin.Repository.List
func (r *SuperAdminRepository) List(ctx context.Context, limit, offset int) ([]*superadmin.SuperAdmin, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, email, active, created_at, updated_at
		FROM super_admins
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar super admins: %w", err)
	}
	defer rows.Close()

	admins := make([]*superadmin.SuperAdmin, 0)
	for rows.Next() {
		var sa superadmin.SuperAdmin
		err := rows.Scan(&sa.ID, &sa.UserID, &sa.Name, &sa.Email, &sa.Active,
			&sa.CreatedAt, &sa.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler super admin: %w", err)
		}
		admins = append(admins, &sa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return admins, nil
}

// UpdateStatus implementa superadmin.Repository.UpdateStatus
func (r *SuperAdminRepository) UpdateStatus(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx,
		"UPDATE super_admins SET active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do super admin: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSuperAdminNotFound
	}

	return nil
}

// CreateAuditLog implementa superadmin.Repository.CreateAuditLog
func (r *SuperAdminRepository) CreateAuditLog(ctx context.Context, a *superadmin.AuditLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO platform_audit_logs (id, super_admin_id, action, target_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.SuperAdminID, a.Action, a.TargetID, a.Details, a.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar auditoria: %w", err)
	}

	return nil
}

// ListAuditLogs implementa superadmin.Repository.ListAuditLogs
func (r *SuperAdminRepository) ListAuditLogs(ctx context.Context, limit, offset int) ([]*superadmin.AuditLog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, super_admin_id, action, target_id, details, created_at
		FROM platform_audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar auditoria: %w", err)
	}
	defer rows.Close()

	logs := make([]*superadmin.AuditLog, 0)
	for rows.Next() {
		var a superadmin.AuditLog
		err := rows.Scan(&a.ID, &a.SuperAdminID, &a.Action, &a.TargetID,
			&a.Details, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler auditoria: %w", err)
		}
		logs = append(logs, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return logs, nil
}

// GetPlatformStats implementa superadmin.Repository.GetPlatformStats
func (r *SuperAdminRepository) GetPlatformStats(ctx context.Context) (*superadmin.PlatformStats, error) {
	stats := &superadmin.PlatformStats{}

	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tenants WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM tenants WHERE deleted_at IS NULL AND status = 'active'),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM invoices),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions
				WHERE type = 'payment' AND date >= date_trunc('month', now())),
			(SELECT COALESCE(SUM(total_balance), 0) FROM clients)
	`).Scan(
		&stats.TotalTenants, &stats.ActiveTenants, &stats.TotalClients,
		&stats.TotalInvoices, &stats.PaymentsThisMonth, &stats.OutstandingBalance)

	if err != nil {
		return nil, fmt.Errorf("erro ao agregar estatísticas da plataforma: %w", err)
	}

	return stats, nil
}
