package notification

import (
	"context"
)

// Repository define a interface para operações de repositório de notificações
type Repository interface {
	// Create cria uma nova notificação
	Create(ctx context.Context, n *Notification) error

	// List lista as notificações de um usuário, mais recentes primeiro
	List(ctx context.Context, tenantID, userID string, limit, offset int) ([]*Notification, error)

	// CountUnread conta as notificações não lidas de um usuário
	CountUnread(ctx context.Context, tenantID, userID string) (int, error)

	// MarkRead marca uma notificação como lida
	MarkRead(ctx context.Context, tenantID, id string) error

	// MarkAllRead marca todas as notificações de um usuário como lidas
	MarkAllRead(ctx context.Context, tenantID, userID string) error

	// Delete remove uma notificação
	Delete(ctx context.Context, tenantID, id string) error
}
