package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role representa o papel/função do usuário
type Role string

// Status representa o status do usuário
type Status string

// Constantes para Role
const (
	RoleOwner  Role = "owner"  // Dono do tenant
	RoleStaff  Role = "staff"  // Funcionário do tenant
	RoleClient Role = "client" // Cliente com acesso ao portal
)

// Constantes para Status
const (
	StatusActive   Status = "active"   // Usuário ativo
	StatusInactive Status = "inactive" // Usuário inativo
	StatusBlocked  Status = "blocked"  // Usuário bloqueado
)

// User representa uma identidade de login do sistema
type User struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	ClientID    string    `json:"client_id,omitempty"` // Preenchido para identidades de cliente
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile representa os dados de perfil vinculados a uma identidade
type Profile struct {
	UserID      string    `json:"user_id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleAssignment representa a atribuição de papel de uma identidade no tenant
type RoleAssignment struct {
	UserID    string    `json:"user_id"`
	TenantID  string    `json:"tenant_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SyntheticEmail monta o email de login determinístico de um cliente.
// O sufixo com tenant ID desambigua o mesmo telefone em tenants diferentes.
func SyntheticEmail(phoneNumber, tenantID string) string {
	return fmt.Sprintf("%s-%s@client.internal", phoneNumber, tenantID)
}

// LegacyEmails retorna os formatos sintéticos antigos que ainda precisam
// ser reconhecidos em login e reset de senha
func LegacyEmails(phoneNumber string) []string {
	return []string{
		fmt.Sprintf("%s@client.internal", phoneNumber),
		fmt.Sprintf("%s@owner.internal", phoneNumber),
	}
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsOwner verifica se o usuário é dono do tenant
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsClient verifica se a identidade pertence a um cliente do portal
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// HasAccessToTenant verifica se o usuário tem acesso ao tenant especificado
func (u *User) HasAccessToTenant(tenantID string) bool {
	return u.TenantID == tenantID
}
