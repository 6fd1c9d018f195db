package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/credit-manager/internal/domain/notification"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrNotificationNotFound = errors.New("notificação não encontrada")
)

// NotificationRepository implementa a interface notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{
		db: db,
	}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (
			id, tenant_id, user_id, title, message, link, read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`,
		n.ID, n.TenantID, n.UserID, n.Title, n.Message, n.Link, n.Read, n.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar notificação: %w", err)
	}

	return nil
}

// List implementa notification.Repository.List
func (r *NotificationRepository) List(ctx context.Context, tenantID, userID string, limit, offset int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, user_id, title, message, link, read, created_at
		FROM notifications
		WHERE tenant_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		tenantID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.TenantID, &n.UserID, &n.Title, &n.Message,
			&n.Link, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler notificação: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return notifications, nil
}

// CountUnread implementa notification.Repository.CountUnread
func (r *NotificationRepository) CountUnread(ctx context.Context, tenantID, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE tenant_id = $1 AND user_id = $2 AND read = false",
		tenantID, userID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar notificações não lidas: %w", err)
	}

	return count, nil
}

// MarkRead implementa notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, tenantID, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = true WHERE tenant_id = $1 AND id = $2",
		tenantID, id)

	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implementa notification.Repository.MarkAllRead
func (r *NotificationRepository) MarkAllRead(ctx context.Context, tenantID, userID string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = true WHERE tenant_id = $1 AND user_id = $2",
		tenantID, userID)

	if err != nil {
		return fmt.Errorf("erro ao marcar notificações como lidas: %w", err)
	}

	return nil
}

// Delete implementa notification.Repository.Delete
func (r *NotificationRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.Exec(ctx,
		"DELETE FROM notifications WHERE tenant_id = $1 AND id = $2",
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir notificação: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
