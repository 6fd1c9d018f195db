package user

import (
	"testing"
)

func TestSyntheticEmail(t *testing.T) {
	got := SyntheticEmail("0912345678", "tenant-1")
	want := "0912345678-tenant-1@client.internal"
	if got != want {
		t.Errorf("SyntheticEmail = %q, esperado %q", got, want)
	}
}

func TestLegacyEmails(t *testing.T) {
	got := LegacyEmails("0912345678")
	if len(got) != 2 {
		t.Fatalf("LegacyEmails retornou %d formatos, esperado 2", len(got))
	}
	if got[0] != "0912345678@client.internal" {
		t.Errorf("formato legado de cliente = %q", got[0])
	}
	if got[1] != "0912345678@owner.internal" {
		t.Errorf("formato legado de dono = %q", got[1])
	}
}

func TestSetAndCheckPassword(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("segredo123"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Password == "segredo123" {
		t.Error("senha não pode ser armazenada em texto puro")
	}

	if !u.CheckPassword("segredo123") {
		t.Error("CheckPassword deveria aceitar a senha correta")
	}
	if u.CheckPassword("errada") {
		t.Error("CheckPassword deveria recusar senha incorreta")
	}
}

func TestHasAccessToTenant(t *testing.T) {
	u := &User{TenantID: "tenant-1"}

	if !u.HasAccessToTenant("tenant-1") {
		t.Error("usuário deveria ter acesso ao próprio tenant")
	}
	if u.HasAccessToTenant("tenant-2") {
		t.Error("usuário não deveria ter acesso a outro tenant")
	}
}

func TestRoleChecks(t *testing.T) {
	owner := &User{Role: RoleOwner, Status: StatusActive}
	if !owner.IsOwner() || owner.IsClient() {
		t.Error("papel owner classificado incorretamente")
	}

	cl := &User{Role: RoleClient, Status: StatusBlocked}
	if !cl.IsClient() || cl.IsOwner() {
		t.Error("papel client classificado incorretamente")
	}
	if cl.IsActive() {
		t.Error("usuário bloqueado não pode ser considerado ativo")
	}
}
