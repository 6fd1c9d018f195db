package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
)

// TenantRequest representa a requisição de criação/atualização de tenant
type TenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// TenantStatusRequest representa a requisição de mudança de status do tenant
type TenantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TenantPlanRequest representa a requisição de mudança de plano do tenant
type TenantPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// TenantFeatureFlagRequest representa a requisição de configuração de feature flag
type TenantFeatureFlagRequest struct {
	Feature string `json:"feature" binding:"required"`
	Enabled bool   `json:"enabled"`
}

// TenantResponse representa a resposta de tenant
type TenantResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Document  string        `json:"document"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Status    tenant.Status `json:"status"`
	Plan      tenant.Plan   `json:"plan"`
	Limits    tenant.Limits `json:"limits"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`
}

// TenantListResponse representa a resposta de lista de tenants
type TenantListResponse struct {
	Items      []TenantResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
}

// ToTenantResponse converte um tenant do domínio para DTO
func ToTenantResponse(t *tenant.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Document:  t.Document,
		Email:     t.Email,
		Phone:     t.Phone,
		Status:    t.Status,
		Plan:      t.Plan,
		Limits:    t.Limits,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}

// ToTenantListResponse converte uma lista de tenants do domínio para DTO
func ToTenantListResponse(tenants []*tenant.Tenant, total, page, size int) *TenantListResponse {
	items := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		items[i] = *ToTenantResponse(t)
	}

	return &TenantListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
