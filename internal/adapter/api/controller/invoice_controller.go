package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// InvoiceController gerencia as requisições relacionadas a faturas
type InvoiceController struct {
	invoiceRepository invoice.Repository
}

// NewInvoiceController cria uma nova instância de InvoiceController
func NewInvoiceController(invoiceRepository invoice.Repository) *InvoiceController {
	return &InvoiceController{
		invoiceRepository: invoiceRepository,
	}
}

// Get busca uma fatura pelo ID
// @Summary Busca uma fatura
// @Description Retorna os dados de uma fatura do tenant
// @Tags invoices
// @Produce json
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (c *InvoiceController) Get(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	i, err := c.invoiceRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(i))
}

// List lista as faturas do tenant
// @Summary Lista as faturas
// @Description Retorna a lista paginada de faturas do tenant, com filtro por status ou cliente
// @Tags invoices
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param status query string false "Filtro por status"
// @Param client_id query string false "Filtro por cliente"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	if clientID := ctx.Query("client_id"); clientID != "" {
		invoices, err := c.invoiceRepository.ListByClient(ctx, tenantID, clientID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar faturas", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, len(invoices), 1, len(invoices)))
		return
	}

	var (
		invoices []*invoice.Invoice
		err      error
	)

	if statusStr := ctx.Query("status"); statusStr != "" {
		status, parseErr := invoice.ParseStatus(statusStr)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", parseErr.Error()))
			return
		}
		invoices, err = c.invoiceRepository.ListByStatus(ctx, tenantID, status, pagination.PageSize, pagination.Offset())
	} else {
		invoices, err = c.invoiceRepository.List(ctx, tenantID, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar faturas", err.Error()))
		return
	}

	total, err := c.invoiceRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar faturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, total, pagination.Page, pagination.PageSize))
}

// Update atualiza o vencimento e as observações de uma fatura.
// Valor e status não são editáveis por aqui: o valor é imutável depois da
// venda e o status é derivado dos pagamentos.
// @Summary Atualiza uma fatura
// @Description Atualiza vencimento e observações de uma fatura do tenant
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "ID da fatura"
// @Param invoice body dto.InvoiceRequest true "Dados da fatura"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [put]
func (c *InvoiceController) Update(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	var request dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	i, err := c.invoiceRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fatura", err.Error()))
		return
	}

	i.DueDate = request.DueDate
	i.Notes = request.Notes

	if err := c.invoiceRepository.Update(ctx, i); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(i))
}

// Delete remove uma fatura
// @Summary Remove uma fatura
// @Description Remove uma fatura do tenant
// @Tags invoices
// @Produce json
// @Param id path string true "ID da fatura"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [delete]
func (c *InvoiceController) Delete(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if err := c.invoiceRepository.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover fatura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fatura removida com sucesso", nil))
}
