package client

import (
	"errors"
	"testing"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0912345678", true},
		{"0000000000", true},
		{"912345678", false},   // não começa com 0
		{"09123456789", false}, // 11 dígitos
		{"091234567", false},   // 9 dígitos
		{"0912a45678", false},  // letra no meio
		{"", false},
		{"+0912345678", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, esperado %v", tt.phone, got, tt.want)
		}
	}
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("tenant-1", "Maria", "0912345678")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if c.Status != StatusOpen {
		t.Errorf("status inicial = %v, esperado open", c.Status)
	}
	if c.TotalBalance != 0 {
		t.Errorf("saldo inicial = %v, esperado 0", c.TotalBalance)
	}
	if c.ID == "" {
		t.Error("ID não foi gerado")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("tenant-1", "", "0912345678"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("nome vazio: erro = %v, esperado ErrEmptyName", err)
	}

	if _, err := NewClient("tenant-1", "Maria", ""); !errors.Is(err, ErrEmptyPhone) {
		t.Errorf("telefone vazio: erro = %v, esperado ErrEmptyPhone", err)
	}

	if _, err := NewClient("tenant-1", "Maria", "12345"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("telefone inválido: erro = %v, esperado ErrInvalidPhone", err)
	}
}

func TestClientCloseReopen(t *testing.T) {
	c, err := NewClient("tenant-1", "Maria", "0912345678")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	c.Close()
	if c.IsOpen() {
		t.Error("cliente deveria estar com conta encerrada")
	}

	c.Reopen()
	if !c.IsOpen() {
		t.Error("cliente deveria estar com conta aberta")
	}
}

func TestClientUpdate(t *testing.T) {
	c, err := NewClient("tenant-1", "Maria", "0912345678")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := c.Update("Maria Silva", "0998765432", "maria@example.com", "boa pagadora"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if c.PhoneNumber != "0998765432" {
		t.Errorf("telefone = %v, esperado 0998765432", c.PhoneNumber)
	}

	if err := c.Update("Maria Silva", "abc", "", ""); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("telefone inválido na atualização: erro = %v, esperado ErrInvalidPhone", err)
	}
}
