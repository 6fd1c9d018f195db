package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage = errors.New("mensagem não pode ser vazia")
)

// Notification representa uma mensagem interna exibida ao usuário
type Notification struct {
	ID        string    `json:"id"`         // ID da Notificação
	TenantID  string    `json:"tenant_id"`  // ID do Tenant
	UserID    string    `json:"user_id"`    // ID do Usuário destinatário
	Title     string    `json:"title"`      // Título
	Message   string    `json:"message"`    // Corpo da mensagem
	Link      string    `json:"link"`       // Link de navegação (opcional)
	Read      bool      `json:"read"`       // Estado lido/não lido
	CreatedAt time.Time `json:"created_at"` // Data de Criação
}

// NewNotification cria uma nova notificação não lida
func NewNotification(tenantID, userID, title, message, link string) (*Notification, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return &Notification{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Link:      link,
		Read:      false,
		CreatedAt: time.Now(),
	}, nil
}
