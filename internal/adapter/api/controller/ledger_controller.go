package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/invoice"
	"github.com/hugohenrick/credit-manager/internal/domain/ledger"
	"github.com/hugohenrick/credit-manager/internal/domain/notification"
	"github.com/hugohenrick/credit-manager/internal/domain/product"
	"github.com/hugohenrick/credit-manager/internal/domain/tenant"
	"github.com/hugohenrick/credit-manager/pkg/config"
	"github.com/hugohenrick/credit-manager/pkg/logger"
	"github.com/hugohenrick/credit-manager/pkg/metrics"
	"github.com/hugohenrick/credit-manager/pkg/sms"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// sideEffectTimeout limita os disparos de SMS e notificações externas,
// que rodam fora do ciclo da requisição
const sideEffectTimeout = 10 * time.Second

// LedgerController gerencia o registro de vendas e pagamentos
type LedgerController struct {
	ledgerRepository       ledger.Repository
	clientRepository       client.Repository
	invoiceRepository      invoice.Repository
	tenantRepository       tenant.Repository
	notificationRepository notification.Repository
	smsSender              sms.Sender
	cfg                    *config.Config
	log                    logger.Logger
}

// NewLedgerController cria uma nova instância de LedgerController
func NewLedgerController(
	ledgerRepository ledger.Repository,
	clientRepository client.Repository,
	invoiceRepository invoice.Repository,
	tenantRepository tenant.Repository,
	notificationRepository notification.Repository,
	smsSender sms.Sender,
	cfg *config.Config,
	log logger.Logger,
) *LedgerController {
	return &LedgerController{
		ledgerRepository:       ledgerRepository,
		clientRepository:       clientRepository,
		invoiceRepository:      invoiceRepository,
		tenantRepository:       tenantRepository,
		notificationRepository: notificationRepository,
		smsSender:              smsSender,
		cfg:                    cfg,
		log:                    log,
	}
}

// RecordSale registra uma venda: fatura e transação de venda pareada,
// criadas juntas na mesma transação de banco
// @Summary Registra uma venda
// @Description Cria a fatura e o lançamento de venda pareado, opcionalmente criando o produto
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *LedgerController) RecordSale(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)

	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cl, err := c.clientRepository.FindByID(ctx, tenantID, request.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if !cl.IsOpen() {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Conta encerrada", "A conta deste cliente está encerrada"))
		return
	}

	// Checar o limite mensal de faturas do plano
	t, err := c.tenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC)
	monthCount, err := c.invoiceRepository.CountByTenantSince(ctx, tenantID, monthStart.Unix())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar faturas do mês", err.Error()))
		return
	}

	if monthCount >= t.Limits.MaxInvoicesPerMonth {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Limite do plano atingido", "O plano atual não permite registrar mais vendas neste mês"))
		return
	}

	in := ledger.SaleInput{
		TenantID:  tenantID,
		ClientID:  request.ClientID,
		ProductID: request.ProductID,
		Amount:    request.Amount,
		DueDate:   request.DueDate,
		Notes:     request.Notes,
	}
	if request.Date != nil {
		in.Date = *request.Date
	}

	// Produto criado junto com a venda, antes da fatura referenciá-lo
	if request.ProductID == "" && request.ProductName != "" {
		p, err := product.NewProduct(tenantID, request.ProductName, request.ProductDescription, request.ProductPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Produto inválido", err.Error()))
			return
		}
		in.NewProduct = p
	}

	result, err := c.ledgerRepository.RecordSale(ctx, in)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar venda", err.Error()))
		return
	}

	metrics.SalesRecorded.Inc()

	// Efeitos colaterais de melhor esforço: nunca desfazem a venda
	c.notifySale(ctx, cl, result)
	c.dispatchSaleSms(cl, result)

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(result))
}

// RecordPayment reconcilia um pagamento contra uma fatura
// @Summary Registra um pagamento
// @Description Insere o pagamento, recalcula o total pago e deriva o novo status da fatura
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "ID da fatura"
// @Param payment body dto.PaymentRequest true "Dados do pagamento"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id}/payments [post]
func (c *LedgerController) RecordPayment(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	invoiceID := ctx.Param("id")

	var request dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	in := ledger.PaymentInput{
		TenantID:          tenantID,
		InvoiceID:         invoiceID,
		Amount:            request.Amount,
		Notes:             request.Notes,
		RejectOverpayment: c.cfg.Overpayment == config.OverpaymentReject,
	}
	if request.Date != nil {
		in.Date = *request.Date
	}

	result, err := c.ledgerRepository.RecordPayment(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvoiceNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fatura não encontrada", ""))
		case errors.Is(err, ledger.ErrInvoiceAlreadyPaid):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Fatura quitada", "Esta fatura já está totalmente paga"))
		case errors.Is(err, ledger.ErrOverpayment):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Pagamento excedente", "O valor excede o saldo restante da fatura"))
		default:
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar pagamento", err.Error()))
		}
		return
	}

	metrics.PaymentsRecorded.Inc()

	cl, err := c.clientRepository.FindByID(ctx, tenantID, result.Invoice.ClientID)
	if err != nil {
		// O pagamento já foi persistido; seguir sem os efeitos colaterais
		c.log.Warn("cliente não encontrado para efeitos do pagamento", "client_id", result.Invoice.ClientID, "error", err)
		ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(result))
		return
	}

	c.notifyPayment(ctx, cl, result)
	c.dispatchPaymentSms(cl, result)

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(result))
}

// notifySale registra a notificação interna da venda (melhor esforço)
func (c *LedgerController) notifySale(ctx *gin.Context, cl *client.Client, result *ledger.SaleResult) {
	userID := ctx.GetString("user_id")

	n, err := notification.NewNotification(
		cl.TenantID,
		userID,
		"Venda registrada",
		fmt.Sprintf("Venda de %.2f registrada para %s (fatura %s)", result.Invoice.Amount, cl.Name, result.Invoice.Number),
		"/invoices/"+result.Invoice.ID,
	)
	if err != nil {
		return
	}

	if err := c.notificationRepository.Create(ctx, n); err != nil {
		c.log.Warn("falha ao criar notificação de venda", "invoice_id", result.Invoice.ID, "error", err)
	}
}

// notifyPayment registra a notificação interna do pagamento (melhor esforço)
func (c *LedgerController) notifyPayment(ctx *gin.Context, cl *client.Client, result *ledger.PaymentResult) {
	userID := ctx.GetString("user_id")

	n, err := notification.NewNotification(
		cl.TenantID,
		userID,
		"Pagamento recebido",
		fmt.Sprintf("Pagamento de %.2f de %s na fatura %s (restante %.2f)", result.Transaction.Amount, cl.Name, result.Invoice.Number, result.Remaining),
		"/invoices/"+result.Invoice.ID,
	)
	if err != nil {
		return
	}

	if err := c.notificationRepository.Create(ctx, n); err != nil {
		c.log.Warn("falha ao criar notificação de pagamento", "invoice_id", result.Invoice.ID, "error", err)
	}
}

// dispatchSaleSms envia o SMS da venda fora do ciclo da requisição.
// Falha no envio é registrada e esquecida.
func (c *LedgerController) dispatchSaleSms(cl *client.Client, result *ledger.SaleResult) {
	message := fmt.Sprintf("Compra registrada: %.2f (fatura %s). Saldo devedor: %.2f",
		result.Invoice.Amount, result.Invoice.Number, cl.TotalBalance+result.Invoice.Amount)

	c.sendSms(cl.PhoneNumber, message)
}

// dispatchPaymentSms envia o SMS do pagamento fora do ciclo da requisição
func (c *LedgerController) dispatchPaymentSms(cl *client.Client, result *ledger.PaymentResult) {
	message := fmt.Sprintf("Pagamento recebido: %.2f (fatura %s). Restante na fatura: %.2f. Saldo devedor: %.2f",
		result.Transaction.Amount, result.Invoice.Number, result.Remaining, result.NewBalance)

	c.sendSms(cl.PhoneNumber, message)
}

// sendSms dispara um SMS em segundo plano, com contexto próprio
func (c *LedgerController) sendSms(phoneNumber, message string) {
	go func() {
		sctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := c.smsSender.Send(sctx, phoneNumber, message); err != nil {
			metrics.SmsFailedTotal.Inc()
			c.log.Warn("falha ao enviar SMS", "phone", phoneNumber, "error", err)
			return
		}
		metrics.SmsSentTotal.Inc()
	}()
}
