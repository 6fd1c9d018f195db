package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/hugohenrick/credit-manager/pkg/logger"
)

func setupPasswordRouter(c *PasswordController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/functions/reset-password", c.Reset)
	return router
}

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// O reset atinge todas as identidades do telefone: o formato sintético
// atual em cada tenant e os formatos legados.
func TestPasswordResetFanOut(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByEmailPrefixFunc: func(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
			if prefix != "0912345678-" || suffix != "@client.internal" {
				t.Errorf("fan-out com prefixo %q e sufixo %q", prefix, suffix)
			}
			return []*user.User{
				{ID: "user-1", Email: "0912345678-tenant-1@client.internal"},
				{ID: "user-2", Email: "0912345678-tenant-2@client.internal"},
			}, nil
		},
		FindByEmailsFunc: func(ctx context.Context, emails []string) ([]*user.User, error) {
			return []*user.User{{ID: "user-3", Email: "0912345678@owner.internal"}}, nil
		},
	}

	ctrl := NewPasswordController(userRepo, &mockSmsSender{}, logger.NewNopLogger())
	router := setupPasswordRouter(ctrl)

	body, _ := json.Marshal(map[string]string{"phone_number": "0912345678"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/reset-password", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}

	var response dto.PasswordResetResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}

	if response.AccountCount != 3 {
		t.Errorf("accountCount = %d, esperado 3", response.AccountCount)
	}
	if !pinPattern.MatchString(response.Pin) {
		t.Errorf("pin = %q, esperado 6 dígitos", response.Pin)
	}
	if len(userRepo.passwordUpdates) != 3 {
		t.Errorf("senhas atualizadas = %v, esperado 3 contas", userRepo.passwordUpdates)
	}
}

// Contas retornadas por mais de um formato contam uma única vez.
func TestPasswordResetDeduplicates(t *testing.T) {
	shared := &user.User{ID: "user-1", Email: "0912345678-tenant-1@client.internal"}

	userRepo := &mockUserRepository{
		FindByEmailPrefixFunc: func(ctx context.Context, prefix, suffix string) ([]*user.User, error) {
			return []*user.User{shared}, nil
		},
		FindByEmailsFunc: func(ctx context.Context, emails []string) ([]*user.User, error) {
			return []*user.User{shared}, nil
		},
	}

	ctrl := NewPasswordController(userRepo, &mockSmsSender{}, logger.NewNopLogger())
	router := setupPasswordRouter(ctrl)

	body, _ := json.Marshal(map[string]string{"phone_number": "0912345678"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/reset-password", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	var response dto.PasswordResetResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("erro ao decodificar resposta: %v", err)
	}

	if response.AccountCount != 1 {
		t.Errorf("accountCount = %d, esperado 1 após deduplicação", response.AccountCount)
	}
}

func TestPasswordResetNoAccounts(t *testing.T) {
	ctrl := NewPasswordController(&mockUserRepository{}, &mockSmsSender{}, logger.NewNopLogger())
	router := setupPasswordRouter(ctrl)

	body, _ := json.Marshal(map[string]string{"phone_number": "0912345678"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/reset-password", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404 sem contas associadas", w.Code)
	}
}

func TestPasswordResetInvalidPhone(t *testing.T) {
	ctrl := NewPasswordController(&mockUserRepository{}, &mockSmsSender{}, logger.NewNopLogger())
	router := setupPasswordRouter(ctrl)

	body, _ := json.Marshal(map[string]string{"phone_number": "abc"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/functions/reset-password", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para telefone inválido", w.Code)
	}
}
