package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/domain/superadmin"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/pkg/logger"
)

func setupSuperAdminRouter(c *SuperAdminController, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", userID)
	})
	router.POST("/super-admin", c.Dispatch)
	return router
}

func activeOperator() *superadmin.SuperAdmin {
	sa, _ := superadmin.NewSuperAdmin("user-admin", "Operador", "ops@platform.internal")
	return sa
}

func dispatchAction(router *gin.Engine, action string, data interface{}) *httptest.ResponseRecorder {
	payload := map[string]interface{}{"action": action}
	if data != nil {
		payload["data"] = data
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/super-admin", bytes.NewReader(body))
	router.ServeHTTP(w, req)
	return w
}

// Quem não é operador da plataforma recebe 403 e nenhuma ação executa.
func TestDispatchNonAdminForbidden(t *testing.T) {
	saRepo := &mockSuperAdminRepository{}
	tenantRepo := &mockTenantRepository{
		UpdateStatusFunc: func(ctx context.Context, id string, status tenant.Status) error {
			t.Error("nenhuma ação deveria executar para chamador sem permissão")
			return nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, tenantRepo, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-comum")

	w := dispatchAction(router, "update_tenant_status", map[string]string{"tenant_id": "t1", "status": "suspended"})

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403", w.Code)
	}
	if len(saRepo.auditLogs) != 0 {
		t.Error("nenhuma auditoria deveria ser gravada para chamador sem permissão")
	}
}

func TestDispatchInactiveOperatorForbidden(t *testing.T) {
	inactive := activeOperator()
	inactive.Active = false

	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return inactive, nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, &mockTenantRepository{}, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "get_platform_stats", nil)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403 para operador desativado", w.Code)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return activeOperator(), nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, &mockTenantRepository{}, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "drop_database", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para ação desconhecida", w.Code)
	}
}

// Ações que modificam estado gravam uma linha de auditoria.
func TestDispatchMutatingActionWritesAudit(t *testing.T) {
	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return activeOperator(), nil
		},
	}

	var updated tenant.Status
	tenantRepo := &mockTenantRepository{
		UpdateStatusFunc: func(ctx context.Context, id string, status tenant.Status) error {
			updated = status
			return nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, tenantRepo, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "update_tenant_status", map[string]string{"tenant_id": "t1", "status": "suspended"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
	if updated != tenant.StatusSuspended {
		t.Errorf("status aplicado = %v, esperado suspended", updated)
	}

	if len(saRepo.auditLogs) != 1 {
		t.Fatalf("auditoria gravada %d vezes, esperado 1", len(saRepo.auditLogs))
	}
	entry := saRepo.auditLogs[0]
	if entry.Action != "update_tenant_status" || entry.TargetID != "t1" {
		t.Errorf("auditoria = %+v", entry)
	}
}

// Ações de leitura não geram auditoria.
func TestDispatchReadActionSkipsAudit(t *testing.T) {
	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return activeOperator(), nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, &mockTenantRepository{}, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "get_platform_stats", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
	if len(saRepo.auditLogs) != 0 {
		t.Error("leitura não deveria gravar auditoria")
	}
}

func TestDispatchInvalidStatusPayload(t *testing.T) {
	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return activeOperator(), nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, &mockTenantRepository{}, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "update_tenant_status", map[string]string{"tenant_id": "t1", "status": "paused"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para status inválido", w.Code)
	}
	if len(saRepo.auditLogs) != 0 {
		t.Error("ação recusada não deveria gravar auditoria")
	}
}

// Payload malformado é recusado com 400 antes de executar a ação.
func TestDispatchMalformedPayload(t *testing.T) {
	saRepo := &mockSuperAdminRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*superadmin.SuperAdmin, error) {
			return activeOperator(), nil
		},
	}

	tenantRepo := &mockTenantRepository{
		UpdateStatusFunc: func(ctx context.Context, id string, status tenant.Status) error {
			t.Errorf("UpdateStatus não deveria executar com payload malformado")
			return nil
		},
	}

	ctrl := NewSuperAdminController(saRepo, tenantRepo, &mockUserRepository{}, logger.NewNopLogger())
	router := setupSuperAdminRouter(ctrl, "user-admin")

	w := dispatchAction(router, "update_tenant_status", 123)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para payload malformado", w.Code)
	}
	if len(saRepo.auditLogs) != 0 {
		t.Error("ação recusada não deveria gravar auditoria")
	}
}
