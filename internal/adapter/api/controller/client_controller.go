package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepository      client.Repository
	invoiceRepository     invoice.Repository
	transactionRepository transaction.Repository
	tenantRepository      tenant.Repository
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(
	clientRepository client.Repository,
	invoiceRepository invoice.Repository,
	transactionRepository transaction.Repository,
	tenantRepository tenant.Repository,
) *ClientController {
	return &ClientController{
		clientRepository:      clientRepository,
		invoiceRepository:     invoiceRepository,
		transactionRepository: transactionRepository,
		tenantRepository:      tenantRepository,
	}
}

// Create cria um novo cliente
// @Summary Cria um novo cliente
// @Description Cadastra um cliente do tenant com telefone único
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	var request dto.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Checar o limite de clientes do plano
	t, err := c.tenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	count, err := c.clientRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar clientes", err.Error()))
		return
	}

	if count >= t.Limits.MaxClients {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Limite do plano atingido", "O plano atual não permite cadastrar mais clientes"))
		return
	}

	cl, err := client.NewClient(tenantID, request.Name, request.PhoneNumber)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}
	cl.Email = request.Email
	cl.Notes = request.Notes

	if err := c.clientRepository.Create(ctx, cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicatePhone) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Cliente já existe", "Já existe um cliente com este telefone"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
}

// Get busca um cliente pelo ID
// @Summary Busca um cliente
// @Description Retorna os dados de um cliente do tenant
// @Tags clients
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	cl, err := c.clientRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// List lista os clientes do tenant
// @Summary Lista os clientes
// @Description Retorna a lista paginada de clientes do tenant, com busca por nome
// @Tags clients
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param name query string false "Filtro por nome"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	var (
		clients []*client.Client
		err     error
	)

	if name := ctx.Query("name"); name != "" {
		clients, err = c.clientRepository.FindByName(ctx, tenantID, name, pagination.PageSize, pagination.Offset())
	} else {
		clients, err = c.clientRepository.List(ctx, tenantID, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.clientRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, pagination.Page, pagination.PageSize))
}

// Update atualiza os dados de um cliente
// @Summary Atualiza um cliente
// @Description Atualiza os dados cadastrais de um cliente do tenant
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	var request dto.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cl, err := c.clientRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if err := cl.Update(request.Name, request.PhoneNumber, request.Email, request.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.clientRepository.Update(ctx, cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicatePhone) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Telefone em uso", "Já existe um cliente com este telefone"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// UpdateStatus abre ou encerra a conta de um cliente
// @Summary Atualiza o status de um cliente
// @Description Abre ou encerra a conta de um cliente do tenant
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/status [patch]
func (c *ClientController) UpdateStatus(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	var request struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	status := client.Status(request.Status)
	if status != client.StatusOpen && status != client.StatusClosed {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", "Use open ou closed"))
		return
	}

	if err := c.clientRepository.UpdateStatus(ctx, tenantID, id, status); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar status", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status atualizado com sucesso", nil))
}

// Delete remove um cliente e seus dados associados
// @Summary Remove um cliente
// @Description Remove um cliente do tenant (cascata para faturas e transações)
// @Tags clients
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if err := c.clientRepository.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente removido com sucesso", nil))
}

// GetBalance retorna o saldo devedor efetivo de um cliente.
// O cálculo sempre passa pela mesma função do ledger, para que todas as
// telas reportem o mesmo número.
// @Summary Saldo devedor de um cliente
// @Description Retorna o saldo devedor calculado a partir de faturas e pagamentos
// @Tags clients
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientBalanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/balance [get]
func (c *ClientController) GetBalance(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if _, err := c.clientRepository.FindByID(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	invoiceTotal, err := c.invoiceRepository.SumAmountByClient(ctx, tenantID, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao somar faturas", err.Error()))
		return
	}

	paymentTotal, err := c.transactionRepository.SumPaymentsByClient(ctx, tenantID, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao somar pagamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ClientBalanceResponse{
		ClientID:     id,
		InvoiceTotal: invoiceTotal,
		PaymentTotal: paymentTotal,
		Outstanding:  ledger.Outstanding(invoiceTotal, paymentTotal),
	})
}
