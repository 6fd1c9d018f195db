package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyDocument = errors.New("documento não pode ser vazio")
	ErrInvalidStatus = errors.New("status inválido")
	ErrInvalidPlan   = errors.New("plano de assinatura inválido")
)

// Status representa o estado do tenant
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
	StatusArchived  Status = "archived"
)

// Plan representa o plano de assinatura do tenant
type Plan string

const (
	PlanFree       Plan = "free"
	PlanBasic      Plan = "basic"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Limits define os limites numéricos do plano de assinatura
type Limits struct {
	MaxUsers            int `json:"max_users"`             // Máximo de usuários
	MaxClients          int `json:"max_clients"`           // Máximo de clientes
	MaxInvoicesPerMonth int `json:"max_invoices_per_month"` // Máximo de faturas por mês
	MaxProducts         int `json:"max_products"`          // Máximo de produtos
}

// DefaultLimits retorna os limites padrão para um plano
func DefaultLimits(plan Plan) Limits {
	switch plan {
	case PlanBasic:
		return Limits{MaxUsers: 5, MaxClients: 200, MaxInvoicesPerMonth: 500, MaxProducts: 100}
	case PlanPro:
		return Limits{MaxUsers: 20, MaxClients: 2000, MaxInvoicesPerMonth: 5000, MaxProducts: 1000}
	case PlanEnterprise:
		return Limits{MaxUsers: 100, MaxClients: 20000, MaxInvoicesPerMonth: 50000, MaxProducts: 10000}
	default:
		return Limits{MaxUsers: 2, MaxClients: 30, MaxInvoicesPerMonth: 50, MaxProducts: 20}
	}
}

// Tenant representa uma conta de negócio no sistema
type Tenant struct {
	ID        string     `json:"id"`         // ID do Tenant
	Name      string     `json:"name"`       // Nome da Empresa
	Document  string     `json:"document"`   // CPF/CNPJ
	Email     string     `json:"email"`      // Email de Contato
	Phone     string     `json:"phone"`      // Telefone de Contato
	Status    Status     `json:"status"`     // Status do Tenant
	Plan      Plan       `json:"plan"`       // Plano de Assinatura
	Limits    Limits     `json:"limits"`     // Limites do Plano
	CreatedAt time.Time  `json:"created_at"` // Data de Criação
	UpdatedAt time.Time  `json:"updated_at"` // Data de Atualização
	DeletedAt *time.Time `json:"deleted_at"` // Data de Remoção (soft delete)
}

// FeatureFlag representa uma funcionalidade habilitada/desabilitada por tenant
type FeatureFlag struct {
	TenantID  string    `json:"tenant_id"`
	Feature   string    `json:"feature"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenant cria um novo tenant com status pendente e plano free
func NewTenant(name, document, email, phone string) (*Tenant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if document == "" {
		return nil, ErrEmptyDocument
	}

	now := time.Now()
	return &Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Status:    StatusPending,
		Plan:      PlanFree,
		Limits:    DefaultLimits(PlanFree),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o tenant está ativo e não foi removido
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive && t.DeletedAt == nil
}

// Activate ativa o tenant
func (t *Tenant) Activate() {
	t.Status = StatusActive
	t.UpdatedAt = time.Now()
}

// Suspend suspende o tenant
func (t *Tenant) Suspend() {
	t.Status = StatusSuspended
	t.UpdatedAt = time.Now()
}

// Archive arquiva o tenant
func (t *Tenant) Archive() {
	t.Status = StatusArchived
	t.UpdatedAt = time.Now()
}

// SoftDelete marca o tenant como removido sem apagar os dados
func (t *Tenant) SoftDelete() {
	now := time.Now()
	t.DeletedAt = &now
	t.UpdatedAt = now
}

// Restore desfaz o soft delete
func (t *Tenant) Restore() {
	t.DeletedAt = nil
	t.UpdatedAt = time.Now()
}

// ChangePlan altera o plano de assinatura e aplica os limites padrão
func (t *Tenant) ChangePlan(plan Plan) error {
	switch plan {
	case PlanFree, PlanBasic, PlanPro, PlanEnterprise:
	default:
		return ErrInvalidPlan
	}

	t.Plan = plan
	t.Limits = DefaultLimits(plan)
	t.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo atualiza os dados cadastrais do tenant. O documento não muda
// depois do registro.
func (t *Tenant) UpdateInfo(name, email, phone string) error {
	if name == "" {
		return ErrEmptyName
	}

	t.Name = name
	t.Email = email
	t.Phone = phone
	t.UpdatedAt = time.Now()
	return nil
}

// ParsePlan converte uma string em Plan válido
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanFree, PlanBasic, PlanPro, PlanEnterprise:
		return Plan(s), nil
	default:
		return "", ErrInvalidPlan
	}
}

// ParseStatus converte uma string em Status válido
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusSuspended, StatusPending, StatusArchived:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
