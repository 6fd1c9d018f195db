package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
)

func setupAuthRouter(t *testing.T, c *AuthController) *gin.Engine {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", c.Login)
	router.POST("/auth/client-login", c.ClientLogin)
	return router
}

func activeClientUser(t *testing.T, email string) *user.User {
	u := &user.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		ClientID: "client-1",
		Name:     "Maria",
		Email:    email,
		Role:     user.RoleClient,
		Status:   user.StatusActive,
	}
	if err := u.SetPassword("senha123"); err != nil {
		t.Fatalf("erro ao definir senha: %v", err)
	}
	return u
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	router.ServeHTTP(w, req)
	return w
}

func TestClientLoginCurrentFormat(t *testing.T) {
	u := activeClientUser(t, "0912345678-tenant-1@client.internal")

	userRepo := &mockUserRepository{
		FindByExactEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email != "0912345678-tenant-1@client.internal" {
				t.Errorf("email resolvido = %q", email)
			}
			return u, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "senha123",
		"tenant_id":    "tenant-1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}

	var response dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}
	if response.AccessToken == "" {
		t.Error("token de acesso não foi gerado")
	}
	if response.User.ID != "user-1" {
		t.Errorf("usuário autenticado = %q", response.User.ID)
	}
}

// Identidades antigas no formato {telefone}@client.internal ainda
// conseguem entrar quando o formato atual não existe.
func TestClientLoginLegacyFallback(t *testing.T) {
	legacy := activeClientUser(t, "0912345678@client.internal")

	userRepo := &mockUserRepository{
		FindByExactEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, repository.ErrUserNotFound
		},
		FindByEmailsFunc: func(ctx context.Context, emails []string) ([]*user.User, error) {
			if len(emails) != 2 {
				t.Errorf("formatos legados consultados = %v", emails)
			}
			return []*user.User{legacy}, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "senha123",
		"tenant_id":    "tenant-1",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
}

// Formato legado de outro tenant não serve: o fallback respeita o tenant
// informado na requisição.
func TestClientLoginLegacyWrongTenantRejected(t *testing.T) {
	other := activeClientUser(t, "0912345678@client.internal")
	other.TenantID = "tenant-2"

	userRepo := &mockUserRepository{
		FindByExactEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, repository.ErrUserNotFound
		},
		FindByEmailsFunc: func(ctx context.Context, emails []string) ([]*user.User, error) {
			return []*user.User{other}, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "senha123",
		"tenant_id":    "tenant-1",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401 para identidade de outro tenant", w.Code)
	}
}

// Sem tenant na requisição, o formato atual só resolve quando existe
// exatamente uma conta; ambiguidade é recusada.
func TestClientLoginWithoutTenantAmbiguous(t *testing.T) {
	u1 := activeClientUser(t, "0912345678-tenant-1@client.internal")
	u2 := activeClientUser(t, "0912345678-tenant-2@client.internal")
	u2.TenantID = "tenant-2"

	userRepo := &mockUserRepository{
		FindByEmailPrefixFunc: func(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
			return []*user.User{u1, u2}, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "senha123",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401 para telefone ambíguo sem tenant", w.Code)
	}
}

// Telefone fora do formato local é recusado antes de qualquer busca:
// curingas de LIKE como _ e % nunca chegam ao repositório.
func TestClientLoginInvalidPhoneRejected(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByExactEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			t.Errorf("nenhuma busca deveria executar para telefone inválido: %q", email)
			return nil, repository.ErrUserNotFound
		},
		FindByEmailPrefixFunc: func(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
			t.Errorf("nenhuma busca por prefixo deveria executar: %q", prefix)
			return nil, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	for _, phone := range []string{"091234567_", "09123%", "abc", ""} {
		w := postJSON(router, "/auth/client-login", map[string]string{
			"phone_number": phone,
			"password":     "senha123",
			"tenant_id":    "tenant-1",
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("telefone %q: status = %d, esperado 400", phone, w.Code)
		}
	}
}

func TestClientLoginWrongPassword(t *testing.T) {
	u := activeClientUser(t, "0912345678-tenant-1@client.internal")

	userRepo := &mockUserRepository{
		FindByExactEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return u, nil
		},
	}

	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "errada",
		"tenant_id":    "tenant-1",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401 para senha incorreta", w.Code)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	u := activeClientUser(t, "dono@mercearia.com")
	u.Status = user.StatusBlocked

	userRepo := &mockUserRepository{}
	ctrl := NewAuthController(userRepo)
	router := setupAuthRouter(t, ctrl)

	// FindByEmail do mock retorna not found por padrão; usar o fluxo de
	// cliente com identidade bloqueada
	userRepo.FindByExactEmailFunc = func(ctx context.Context, email string) (*user.User, error) {
		return u, nil
	}

	w := postJSON(router, "/auth/client-login", map[string]string{
		"phone_number": "0912345678",
		"password":     "senha123",
		"tenant_id":    "tenant-1",
	})

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403 para usuário bloqueado", w.Code)
	}
}
