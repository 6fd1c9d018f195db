package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// TransactionController gerencia a consulta do ledger.
// Lançamentos são imutáveis: criação só acontece via venda ou pagamento.
type TransactionController struct {
	transactionRepository transaction.Repository
}

// NewTransactionController cria uma nova instância de TransactionController
func NewTransactionController(transactionRepository transaction.Repository) *TransactionController {
	return &TransactionController{
		transactionRepository: transactionRepository,
	}
}

// Get busca um lançamento pelo ID
// @Summary Busca um lançamento
// @Description Retorna os dados de um lançamento do ledger do tenant
// @Tags transactions
// @Produce json
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (c *TransactionController) Get(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	t, err := c.transactionRepository.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Transação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar transação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t))
}

// List lista os lançamentos do tenant
// @Summary Lista os lançamentos
// @Description Retorna o extrato do tenant, com filtro por cliente ou fatura
// @Tags transactions
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param client_id query string false "Filtro por cliente"
// @Param invoice_id query string false "Filtro por fatura"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	if invoiceID := ctx.Query("invoice_id"); invoiceID != "" {
		transactions, err := c.transactionRepository.ListByInvoice(ctx, tenantID, invoiceID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar transações", err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, len(transactions), 1, len(transactions)))
		return
	}

	var (
		transactions []*transaction.Transaction
		err          error
	)

	if clientID := ctx.Query("client_id"); clientID != "" {
		transactions, err = c.transactionRepository.ListByClient(ctx, tenantID, clientID, pagination.PageSize, pagination.Offset())
	} else {
		transactions, err = c.transactionRepository.List(ctx, tenantID, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar transações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions, len(transactions), pagination.Page, pagination.PageSize))
}
