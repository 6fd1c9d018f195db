package tenant

import (
	"errors"
	"testing"
)

func TestNewTenant(t *testing.T) {
	tn, err := NewTenant("Mercearia Central", "12345678900", "contato@mercearia.com", "0911222333")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if tn.Status != StatusPending {
		t.Errorf("status inicial = %v, esperado pending", tn.Status)
	}
	if tn.Plan != PlanFree {
		t.Errorf("plano inicial = %v, esperado free", tn.Plan)
	}
	if tn.Limits != DefaultLimits(PlanFree) {
		t.Errorf("limites iniciais = %+v, esperado os do plano free", tn.Limits)
	}
}

func TestNewTenantValidation(t *testing.T) {
	if _, err := NewTenant("", "12345678900", "", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("nome vazio: erro = %v, esperado ErrEmptyName", err)
	}

	if _, err := NewTenant("Mercearia", "", "", ""); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("documento vazio: erro = %v, esperado ErrEmptyDocument", err)
	}
}

func TestDefaultLimits(t *testing.T) {
	tests := []struct {
		plan Plan
		want Limits
	}{
		{PlanFree, Limits{MaxUsers: 2, MaxClients: 30, MaxInvoicesPerMonth: 50, MaxProducts: 20}},
		{PlanBasic, Limits{MaxUsers: 5, MaxClients: 200, MaxInvoicesPerMonth: 500, MaxProducts: 100}},
		{PlanPro, Limits{MaxUsers: 20, MaxClients: 2000, MaxInvoicesPerMonth: 5000, MaxProducts: 1000}},
		{PlanEnterprise, Limits{MaxUsers: 100, MaxClients: 20000, MaxInvoicesPerMonth: 50000, MaxProducts: 10000}},
	}

	for _, tt := range tests {
		if got := DefaultLimits(tt.plan); got != tt.want {
			t.Errorf("DefaultLimits(%v) = %+v, esperado %+v", tt.plan, got, tt.want)
		}
	}
}

func TestChangePlan(t *testing.T) {
	tn, err := NewTenant("Mercearia", "12345678900", "", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := tn.ChangePlan(PlanPro); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if tn.Plan != PlanPro {
		t.Errorf("plano = %v, esperado pro", tn.Plan)
	}
	if tn.Limits != DefaultLimits(PlanPro) {
		t.Errorf("limites = %+v, esperado os do plano pro", tn.Limits)
	}
}

func TestParsePlan(t *testing.T) {
	if p, err := ParsePlan("basic"); err != nil || p != PlanBasic {
		t.Errorf("ParsePlan(basic) = %v, %v", p, err)
	}

	if _, err := ParsePlan("platinum"); !errors.Is(err, ErrInvalidPlan) {
		t.Errorf("plano inexistente: erro = %v, esperado ErrInvalidPlan", err)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("suspended"); err != nil || s != StatusSuspended {
		t.Errorf("ParseStatus(suspended) = %v, %v", s, err)
	}

	if _, err := ParseStatus("paused"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("status inexistente: erro = %v, esperado ErrInvalidStatus", err)
	}
}

func TestSoftDeleteRestore(t *testing.T) {
	tn, err := NewTenant("Mercearia", "12345678900", "", "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	tn.Activate()

	if !tn.IsActive() {
		t.Fatal("tenant deveria estar ativo")
	}

	tn.SoftDelete()
	if tn.DeletedAt == nil {
		t.Error("DeletedAt deveria estar preenchido")
	}
	if tn.IsActive() {
		t.Error("tenant removido não pode ser considerado ativo")
	}

	tn.Restore()
	if tn.DeletedAt != nil {
		t.Error("DeletedAt deveria ser limpo na restauração")
	}
}
