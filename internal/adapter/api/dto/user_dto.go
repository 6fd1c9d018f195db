package dto

import (
	"time"

	"github.com/hugohenrick/credit-manager/internal/domain/user"
)

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	ClientID    string      `json:"client_id,omitempty"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        user.Role   `json:"role"`
	Status      user.Status `json:"status"`
	LastLoginAt time.Time   `json:"last_login_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um usuário do domínio para DTO
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		ClientID:    u.ClientID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO
func ToUserListResponse(users []*user.User, total, page, size int) *UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = *ToUserResponse(u)
	}

	return &UserListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
