package dto

import (
	"time"
)

// LoginRequest representa os dados para login de usuário do tenant
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	TenantID string `json:"tenant_id"`
}

// ClientLoginRequest representa os dados para login no portal do cliente.
// O cliente autentica com telefone e senha; o email sintético é resolvido
// internamente a partir do telefone e do tenant.
type ClientLoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
	TenantID    string `json:"tenant_id"`
}

// LoginResponse representa a resposta de login bem-sucedido
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}
