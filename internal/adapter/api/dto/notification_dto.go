package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/notification"
)

// NotificationResponse representa a resposta de notificação
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse representa a resposta de lista de notificações
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
	Page   int                    `json:"page"`
	Size   int                    `json:"size"`
}

// ToNotificationResponse converte uma notificação do domínio para DTO
func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converte uma lista de notificações do domínio para DTO
func ToNotificationListResponse(notifications []*notification.Notification, unread, page, size int) *NotificationListResponse {
	items := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = *ToNotificationResponse(n)
	}

	return &NotificationListResponse{
		Items:  items,
		Unread: unread,
		Page:   page,
		Size:   size,
	}
}
