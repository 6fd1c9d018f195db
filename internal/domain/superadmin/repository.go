package superadmin

import (
	"context"
)

// PlatformStats agrega os números globais da plataforma
type PlatformStats struct {
	TotalTenants       int     `json:"total_tenants"`
	ActiveTenants      int     `json:"active_tenants"`
	TotalClients       int     `json:"total_clients"`
	TotalInvoices      int     `json:"total_invoices"`
	PaymentsThisMonth  float64 `json:"payments_this_month"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

// Repository define a interface para operações do console de plataforma
type Repository interface {
	// FindByUserID busca um super admin pela identidade de login
	FindByUserID(ctx context.Context, userID string) (*SuperAdmin, error)

	// Create cria um novo super admin
	Create(ctx context.Context, sa *SuperAdmin) error

	// List lista os super admins
	List(ctx context.Context, limit, offset int) ([]*SuperAdmin, error)

	// UpdateStatus ativa/desativa um super admin
	UpdateStatus(ctx context.Context, id string, active bool) error

	// CreateAuditLog registra uma ação administrativa
	CreateAuditLog(ctx context.Context, a *AuditLog) error

	// ListAuditLogs lista os registros de auditoria, mais recentes primeiro
	ListAuditLogs(ctx context.Context, limit, offset int) ([]*AuditLog, error)

	// GetPlatformStats agrega os números globais da plataforma
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}
