package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/transaction"
	"github.com/hugohenrick/credit-manager/pkg/logger"
	"github.com/hugohenrick/credit-manager/pkg/metrics"
	"github.com/hugohenrick/credit-manager/pkg/sms"
)

// SmsController gerencia o envio avulso de SMS de transação.
// O chamador só envia SMS para clientes do próprio tenant.
type SmsController struct {
	clientRepository client.Repository
	smsSender        sms.Sender
	log              logger.Logger
}

// NewSmsController cria uma nova instância de SmsController
func NewSmsController(clientRepository client.Repository, smsSender sms.Sender, log logger.Logger) *SmsController {
	return &SmsController{
		clientRepository: clientRepository,
		smsSender:        smsSender,
		log:              log,
	}
}

// SendTransactionSms envia um SMS descrevendo uma venda ou pagamento
// @Summary Envia SMS de transação
// @Description Envia ao cliente um SMS descrevendo a venda ou o pagamento
// @Tags functions
// @Accept json
// @Produce json
// @Param request body dto.TransactionSmsRequest true "Dados do SMS"
// @Success 200 {object} dto.TransactionSmsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /functions/send-transaction-sms [post]
func (c *SmsController) SendTransactionSms(ctx *gin.Context) {
	tenantID := ctx.GetString("tenant_id")

	var request dto.TransactionSmsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	txType := transaction.Type(request.Type)
	if txType != transaction.TypeSale && txType != transaction.TypePayment {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo inválido", "Use sale ou payment"))
		return
	}

	// A busca é restrita ao tenant do chamador: cliente de outro tenant
	// aparece como não encontrado
	cl, err := c.clientRepository.FindByID(ctx, tenantID, request.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", "Cliente não pertence ao seu tenant"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	message := c.composeMessage(txType, request)

	sctx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()

	if err := c.smsSender.Send(sctx, cl.PhoneNumber, message); err != nil {
		metrics.SmsFailedTotal.Inc()
		c.log.Warn("falha ao enviar SMS de transação", "client_id", cl.ID, "error", err)
		ctx.JSON(http.StatusOK, dto.TransactionSmsResponse{
			Success: true,
			SmsSent: false,
			Reason:  err.Error(),
		})
		return
	}

	metrics.SmsSentTotal.Inc()
	ctx.JSON(http.StatusOK, dto.TransactionSmsResponse{
		Success: true,
		SmsSent: true,
	})
}

// composeMessage monta o texto do SMS conforme o tipo da transação
func (c *SmsController) composeMessage(txType transaction.Type, request dto.TransactionSmsRequest) string {
	if txType == transaction.TypeSale {
		msg := fmt.Sprintf("Compra registrada: %.2f", request.Amount)
		if request.ProductName != "" {
			msg += fmt.Sprintf(" (%s)", request.ProductName)
		}
		if request.InvoiceNumber != "" {
			msg += fmt.Sprintf(", fatura %s", request.InvoiceNumber)
		}
		msg += fmt.Sprintf(". Saldo devedor: %.2f", request.NewBalance)
		return msg
	}

	msg := fmt.Sprintf("Pagamento recebido: %.2f", request.Amount)
	if request.InvoiceNumber != "" {
		msg += fmt.Sprintf(", fatura %s", request.InvoiceNumber)
	}
	msg += fmt.Sprintf(". Saldo devedor: %.2f", request.NewBalance)
	return msg
}
