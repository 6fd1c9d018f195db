package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/superadmin"
)

// SuperAdminActionRequest representa a requisição do console de plataforma.
// A ação é despachada pelo nome; os dados variam conforme a ação.
type SuperAdminActionRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

// SuperAdminActionResponse representa a resposta do console de plataforma
type SuperAdminActionResponse struct {
	Data interface{} `json:"data"`
}

// SuperAdminResponse representa a resposta de super admin
type SuperAdminResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditLogResponse representa a resposta de registro de auditoria
type AuditLogResponse struct {
	ID           string    `json:"id"`
	SuperAdminID string    `json:"super_admin_id"`
	Action       string    `json:"action"`
	TargetID     string    `json:"target_id,omitempty"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToSuperAdminResponse converte um super admin do domínio para DTO
func ToSuperAdminResponse(sa *superadmin.SuperAdmin) *SuperAdminResponse {
	return &SuperAdminResponse{
		ID:        sa.ID,
		UserID:    sa.UserID,
		Name:      sa.Name,
		Email:     sa.Email,
		Active:    sa.Active,
		CreatedAt: sa.CreatedAt,
		UpdatedAt: sa.UpdatedAt,
	}
}

// ToAuditLogResponse converte um registro de auditoria do domínio para DTO
func ToAuditLogResponse(a *superadmin.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           a.ID,
		SuperAdminID: a.SuperAdminID,
		Action:       a.Action,
		TargetID:     a.TargetID,
		Details:      a.Details,
		CreatedAt:    a.CreatedAt,
	}
}
