package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
)

// TenantController gerencia as requisições relacionadas a tenants
type TenantController struct {
	tenantRepository tenant.Repository
	userRepository   user.Repository
}

// NewTenantController cria uma nova instância de TenantController
func NewTenantController(tenantRepository tenant.Repository, userRepository user.Repository) *TenantController {
	return &TenantController{
		tenantRepository: tenantRepository,
		userRepository:   userRepository,
	}
}

// Create cria um novo tenant
// @Summary Cria um novo tenant
// @Description Registra uma nova conta de negócio com plano free e status pendente
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.TenantRequest true "Dados do tenant"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [post]
func (c *TenantController) Create(ctx *gin.Context) {
	var request dto.TenantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	t, err := tenant.NewTenant(request.Name, request.Document, request.Email, request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.tenantRepository.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTenantDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Tenant já existe", "Já existe um tenant com este documento"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// Get busca um tenant pelo ID
// @Summary Busca um tenant
// @Description Retorna os dados de um tenant pelo ID
// @Tags tenants
// @Produce json
// @Param id path string true "ID do tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	t, err := c.tenantRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// List lista os tenants com paginação
// @Summary Lista os tenants
// @Description Retorna a lista paginada de tenants ativos
// @Tags tenants
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.TenantListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants [get]
func (c *TenantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	tenants, err := c.tenantRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tenants", err.Error()))
		return
	}

	total, err := c.tenantRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar tenants", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantListResponse(tenants, total, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um tenant
// @Summary Atualiza um tenant
// @Description Atualiza os dados cadastrais de um tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "ID do tenant"
// @Param tenant body dto.TenantRequest true "Dados do tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id} [put]
func (c *TenantController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.TenantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	t, err := c.tenantRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	if err := t.UpdateInfo(request.Name, request.Email, request.Phone); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.tenantRepository.Update(ctx, t); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// UpdateStatus atualiza o status de um tenant
// @Summary Atualiza o status de um tenant
// @Description Ativa, suspende ou arquiva um tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "ID do tenant"
// @Param status body dto.TenantStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tenants/{id}/status [patch]
func (c *TenantController) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.TenantStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	status, err := tenant.ParseStatus(request.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", err.Error()))
		return
	}

	if err := c.tenantRepository.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status atualizado com sucesso", nil))
}
