package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/superadmin"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/hugohenrick/credit-manager/pkg/logger"
)

var (
	errUnknownAction  = errors.New("ação desconhecida")
	errInvalidPayload = errors.New("dados da ação inválidos")
)

// SuperAdminController é o console da plataforma: um despacho de ações
// nomeadas, restrito a operadores registrados, com auditoria das mutações
type SuperAdminController struct {
	superAdminRepository superadmin.Repository
	tenantRepository     tenant.Repository
	userRepository       user.Repository
	log                  logger.Logger
}

// NewSuperAdminController cria uma nova instância de SuperAdminController
func NewSuperAdminController(
	superAdminRepository superadmin.Repository,
	tenantRepository tenant.Repository,
	userRepository user.Repository,
	log logger.Logger,
) *SuperAdminController {
	return &SuperAdminController{
		superAdminRepository: superAdminRepository,
		tenantRepository:     tenantRepository,
		userRepository:       userRepository,
		log:                  log,
	}
}

// Dispatch recebe {action, data} e executa a ação correspondente.
// Toda ação que modifica estado grava uma linha de auditoria.
// @Summary Executa uma ação do console de plataforma
// @Description Despacha ações administrativas nomeadas, restritas a super admins
// @Tags super-admin
// @Accept json
// @Produce json
// @Param request body dto.SuperAdminActionRequest true "Ação e dados"
// @Success 200 {object} dto.SuperAdminActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /super-admin [post]
func (c *SuperAdminController) Dispatch(ctx *gin.Context) {
	userID := ctx.GetString("user_id")

	// Gate: o chamador precisa ser um operador ativo da plataforma
	sa, err := c.superAdminRepository.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSuperAdminNotFound) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", "Apenas operadores da plataforma podem usar este console"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao verificar permissões", err.Error()))
		return
	}

	if !sa.Active {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", "Operador desativado"))
		return
	}

	var request dto.SuperAdminActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	data, err := c.dispatch(ctx, sa, request.Action, request.Data)
	if err != nil {
		switch {
		case errors.Is(err, errUnknownAction):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Ação desconhecida", request.Action))
		case errors.Is(err, errInvalidPayload):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		case errors.Is(err, repository.ErrTenantNotFound),
			errors.Is(err, repository.ErrSuperAdminNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Registro não encontrado", err.Error()))
		case errors.Is(err, tenant.ErrInvalidStatus), errors.Is(err, tenant.ErrInvalidPlan):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao executar ação", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.SuperAdminActionResponse{Data: data})
}

// dispatch é a tabela de despacho das ações do console
func (c *SuperAdminController) dispatch(ctx *gin.Context, sa *superadmin.SuperAdmin, action string, raw json.RawMessage) (interface{}, error) {
	switch action {
	case "get_platform_stats":
		return c.superAdminRepository.GetPlatformStats(ctx)

	case "get_tenants":
		var in struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if in.Limit <= 0 {
			in.Limit = 50
		}
		tenants, err := c.tenantRepository.ListAll(ctx, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
		items := make([]*dto.TenantResponse, len(tenants))
		for i, t := range tenants {
			items[i] = dto.ToTenantResponse(t)
		}
		return items, nil

	case "get_tenant", "get_tenant_details":
		var in struct {
			TenantID string `json:"tenant_id"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		t, err := c.tenantRepository.FindByID(ctx, in.TenantID)
		if err != nil {
			return nil, err
		}
		return dto.ToTenantResponse(t), nil

	case "get_tenant_users":
		var in struct {
			TenantID string `json:"tenant_id"`
			Limit    int    `json:"limit"`
			Offset   int    `json:"offset"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if in.Limit <= 0 {
			in.Limit = 50
		}
		users, err := c.userRepository.ListByTenant(ctx, in.TenantID, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
		items := make([]*dto.UserResponse, len(users))
		for i, u := range users {
			items[i] = dto.ToUserResponse(u)
		}
		return items, nil

	case "update_tenant_status":
		var in struct {
			TenantID string `json:"tenant_id"`
			Status   string `json:"status"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		status, err := tenant.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		if err := c.tenantRepository.UpdateStatus(ctx, in.TenantID, status); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "update_tenant_status", in.TenantID, fmt.Sprintf(`{"status":%q}`, in.Status))
		return gin.H{"tenant_id": in.TenantID, "status": status}, nil

	case "update_tenant_info":
		var in struct {
			TenantID string `json:"tenant_id"`
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		t, err := c.tenantRepository.FindByID(ctx, in.TenantID)
		if err != nil {
			return nil, err
		}
		if err := t.UpdateInfo(in.Name, in.Email, in.Phone); err != nil {
			return nil, err
		}
		if err := c.tenantRepository.Update(ctx, t); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "update_tenant_info", in.TenantID, "")
		return dto.ToTenantResponse(t), nil

	case "update_subscription":
		var in struct {
			TenantID string `json:"tenant_id"`
			Plan     string `json:"plan"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		plan, err := tenant.ParsePlan(in.Plan)
		if err != nil {
			return nil, err
		}
		if err := c.tenantRepository.UpdatePlan(ctx, in.TenantID, plan, tenant.DefaultLimits(plan)); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "update_subscription", in.TenantID, fmt.Sprintf(`{"plan":%q}`, in.Plan))
		return gin.H{"tenant_id": in.TenantID, "plan": plan, "limits": tenant.DefaultLimits(plan)}, nil

	case "update_tenant_limits":
		var in struct {
			TenantID            string `json:"tenant_id"`
			MaxUsers            int    `json:"max_users"`
			MaxClients          int    `json:"max_clients"`
			MaxInvoicesPerMonth int    `json:"max_invoices_per_month"`
			MaxProducts         int    `json:"max_products"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		t, err := c.tenantRepository.FindByID(ctx, in.TenantID)
		if err != nil {
			return nil, err
		}
		// Somente os limites informados (> 0) são sobrescritos
		if in.MaxUsers > 0 {
			t.Limits.MaxUsers = in.MaxUsers
		}
		if in.MaxClients > 0 {
			t.Limits.MaxClients = in.MaxClients
		}
		if in.MaxInvoicesPerMonth > 0 {
			t.Limits.MaxInvoicesPerMonth = in.MaxInvoicesPerMonth
		}
		if in.MaxProducts > 0 {
			t.Limits.MaxProducts = in.MaxProducts
		}
		t.UpdatedAt = time.Now()
		if err := c.tenantRepository.Update(ctx, t); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "update_tenant_limits", in.TenantID, fmt.Sprintf(`{"max_users":%d,"max_clients":%d,"max_invoices_per_month":%d,"max_products":%d}`,
			t.Limits.MaxUsers, t.Limits.MaxClients, t.Limits.MaxInvoicesPerMonth, t.Limits.MaxProducts))
		return dto.ToTenantResponse(t), nil

	case "soft_delete_tenant":
		var in struct {
			TenantID string `json:"tenant_id"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if err := c.tenantRepository.SoftDelete(ctx, in.TenantID); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "soft_delete_tenant", in.TenantID, "")
		return gin.H{"tenant_id": in.TenantID, "deleted": true}, nil

	case "restore_tenant":
		var in struct {
			TenantID string `json:"tenant_id"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if err := c.tenantRepository.Restore(ctx, in.TenantID); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "restore_tenant", in.TenantID, "")
		return gin.H{"tenant_id": in.TenantID, "deleted": false}, nil

	case "toggle_feature_flag":
		var in struct {
			TenantID string `json:"tenant_id"`
			Feature  string `json:"feature"`
			Enabled  bool   `json:"enabled"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if err := c.tenantRepository.SetFeatureFlag(ctx, in.TenantID, in.Feature, in.Enabled); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "toggle_feature_flag", in.TenantID, fmt.Sprintf(`{"feature":%q,"enabled":%t}`, in.Feature, in.Enabled))
		return gin.H{"tenant_id": in.TenantID, "feature": in.Feature, "enabled": in.Enabled}, nil

	case "get_feature_flags":
		var in struct {
			TenantID string `json:"tenant_id"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		return c.tenantRepository.ListFeatureFlags(ctx, in.TenantID)

	case "get_audit_logs":
		var in struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if in.Limit <= 0 {
			in.Limit = 50
		}
		logs, err := c.superAdminRepository.ListAuditLogs(ctx, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
		items := make([]*dto.AuditLogResponse, len(logs))
		for i, a := range logs {
			items[i] = dto.ToAuditLogResponse(a)
		}
		return items, nil

	case "get_super_admins":
		var in struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if in.Limit <= 0 {
			in.Limit = 50
		}
		admins, err := c.superAdminRepository.List(ctx, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
		items := make([]*dto.SuperAdminResponse, len(admins))
		for i, a := range admins {
			items[i] = dto.ToSuperAdminResponse(a)
		}
		return items, nil

	case "create_super_admin":
		var in struct {
			UserID string `json:"user_id"`
			Name   string `json:"name"`
			Email  string `json:"email"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		newAdmin, err := superadmin.NewSuperAdmin(in.UserID, in.Name, in.Email)
		if err != nil {
			return nil, err
		}
		if err := c.superAdminRepository.Create(ctx, newAdmin); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "create_super_admin", newAdmin.ID, fmt.Sprintf(`{"user_id":%q}`, in.UserID))
		return dto.ToSuperAdminResponse(newAdmin), nil

	case "update_super_admin_status":
		var in struct {
			ID     string `json:"id"`
			Active bool   `json:"active"`
		}
		if err := decode(raw, &in); err != nil {
			return nil, err
		}
		if err := c.superAdminRepository.UpdateStatus(ctx, in.ID, in.Active); err != nil {
			return nil, err
		}
		c.audit(ctx, sa, "update_super_admin_status", in.ID, fmt.Sprintf(`{"active":%t}`, in.Active))
		return gin.H{"id": in.ID, "active": in.Active}, nil

	default:
		return nil, errUnknownAction
	}
}

// audit grava a linha de auditoria de uma ação mutante. Falha aqui é
// registrada mas não desfaz a ação.
func (c *SuperAdminController) audit(ctx *gin.Context, sa *superadmin.SuperAdmin, action, targetID, details string) {
	entry := superadmin.NewAuditLog(sa.ID, action, targetID, details)
	if err := c.superAdminRepository.CreateAuditLog(ctx, entry); err != nil {
		c.log.Error("falha ao gravar auditoria", "action", action, "target_id", targetID, "error", err)
	}
}

// decode deserializa o payload de uma ação; payload ausente vira zero value,
// payload malformado interrompe a ação antes de qualquer escrita
func decode(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	return nil
}
