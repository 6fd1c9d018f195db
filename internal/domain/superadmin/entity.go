package superadmin

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserID   = errors.New("usuário não informado")
	ErrNotSuperAdmin = errors.New("usuário não é super admin")
)

// SuperAdmin representa um operador da plataforma
type SuperAdmin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`    // Identidade de login vinculada
	Name      string    `json:"name"`       // Nome do operador
	Email     string    `json:"email"`      // Email do operador
	Active    bool      `json:"active"`     // Operador ativo
	CreatedAt time.Time `json:"created_at"` // Data de Criação
	UpdatedAt time.Time `json:"updated_at"` // Data de Atualização
}

// AuditLog representa o registro de uma ação administrativa da plataforma
type AuditLog struct {
	ID           string    `json:"id"`
	SuperAdminID string    `json:"super_admin_id"` // Operador que executou
	Action       string    `json:"action"`         // Nome da ação
	TargetID     string    `json:"target_id"`      // Alvo da ação (tenant, admin, etc)
	Details      string    `json:"details"`        // Detalhes em JSON
	CreatedAt    time.Time `json:"created_at"`
}

// NewSuperAdmin cria um novo operador ativo da plataforma
func NewSuperAdmin(userID, name, email string) (*SuperAdmin, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	now := time.Now()
	return &SuperAdmin{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewAuditLog cria um novo registro de auditoria
func NewAuditLog(superAdminID, action, targetID, details string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New().String(),
		SuperAdminID: superAdminID,
		Action:       action,
		TargetID:     targetID,
		Details:      details,
		CreatedAt:    time.Now(),
	}
}
