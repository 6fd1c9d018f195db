package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
)

// TenantValidator valida tenants para o middleware de tenant
type TenantValidator struct {
	tenantRepo tenant.Repository
}

// NewTenantValidator cria uma nova instância de TenantValidator
func NewTenantValidator(tenantRepo tenant.Repository) *TenantValidator {
	return &TenantValidator{
		tenantRepo: tenantRepo,
	}
}

// ValidateTenant verifica se o tenant existe, está ativo e não foi removido
func (v *TenantValidator) ValidateTenant(tenantID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := v.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return false, nil
		}
		return false, err
	}

	return t.IsActive(), nil
}
