package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// DashboardController agrega os números do painel do tenant
type DashboardController struct {
	clientRepository      client.Repository
	invoiceRepository     invoice.Repository
	transactionRepository transaction.Repository
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(
	clientRepository client.Repository,
	invoiceRepository invoice.Repository,
	transactionRepository transaction.Repository,
) *DashboardController {
	return &DashboardController{
		clientRepository:      clientRepository,
		invoiceRepository:     invoiceRepository,
		transactionRepository: transactionRepository,
	}
}

// Get retorna os agregados do painel. O saldo devedor total passa pela
// mesma função usada nas demais telas.
// @Summary Painel do tenant
// @Description Retorna contagens e somas agregadas do tenant
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	totalClients, err := c.clientRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar clientes", err.Error()))
		return
	}

	totalInvoices, err := c.invoiceRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar faturas", err.Error()))
		return
	}

	byStatus, err := c.invoiceRepository.CountByStatus(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao agrupar faturas", err.Error()))
		return
	}

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)
	paymentsThisMonth, err := c.transactionRepository.SumPaymentsByTenantSince(ctx, tenantID, monthStart.Unix())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao somar pagamentos", err.Error()))
		return
	}

	invoiceTotal, err := c.invoiceRepository.SumAmountByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao somar faturas", err.Error()))
		return
	}

	paymentTotal, err := c.transactionRepository.SumPaymentsByTenant(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao somar pagamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		TotalClients:       totalClients,
		TotalInvoices:      totalInvoices,
		InvoicesByStatus:   byStatus,
		PaymentsThisMonth:  paymentsThisMonth,
		OutstandingBalance: ledger.Outstanding(invoiceTotal, paymentTotal),
	})
}
