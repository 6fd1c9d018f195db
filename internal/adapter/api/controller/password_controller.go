package controller

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/hugohenrick/credit-manager/pkg/logger"
	"github.com/hugohenrick/credit-manager/pkg/sms"
)

// PasswordController gerencia o reset de senha por telefone.
// Um telefone pode mapear para identidades em vários tenants (formato
// sintético atual) e para os formatos legados; o reset atinge todas.
type PasswordController struct {
	userRepository user.Repository
	smsSender      sms.Sender
	log            logger.Logger
}

// NewPasswordController cria uma nova instância de PasswordController
func NewPasswordController(userRepository user.Repository, smsSender sms.Sender, log logger.Logger) *PasswordController {
	return &PasswordController{
		userRepository: userRepository,
		smsSender:      smsSender,
		log:            log,
	}
}

// Reset gera um PIN de 6 dígitos e o define como senha de todas as
// identidades associadas ao telefone
// @Summary Reseta a senha de um cliente
// @Description Gera um PIN e o aplica em todas as contas do telefone, em todos os tenants
// @Tags functions
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Telefone do cliente"
// @Success 200 {object} dto.PasswordResetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /functions/reset-password [post]
func (c *PasswordController) Reset(ctx *gin.Context) {
	var request dto.PasswordResetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !client.ValidPhone(request.PhoneNumber) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Telefone inválido", "O telefone deve ter o formato 0XXXXXXXXX"))
		return
	}

	accounts, err := c.findAccounts(ctx, request.PhoneNumber)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar contas", err.Error()))
		return
	}

	if len(accounts) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Conta não encontrada", "Nenhuma conta associada a este telefone"))
		return
	}

	pin, err := generatePin()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar PIN", err.Error()))
		return
	}

	hashed, err := hashPassword(pin)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar senha", err.Error()))
		return
	}

	for _, u := range accounts {
		if err := c.userRepository.UpdatePassword(ctx, u.ID, hashed); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao redefinir senha", err.Error()))
			return
		}
	}

	smsSent := c.sendPin(request.PhoneNumber, pin)

	ctx.JSON(http.StatusOK, dto.PasswordResetResponse{
		Pin:          pin,
		Message:      fmt.Sprintf("Senha redefinida em %d conta(s)", len(accounts)),
		AccountCount: len(accounts),
		SmsSent:      smsSent,
	})
}

// findAccounts faz o fan-out sobre todos os formatos de email sintético:
// o atual ({telefone}-{tenant}@client.internal) e os legados
func (c *PasswordController) findAccounts(ctx *gin.Context, phoneNumber string) ([]*user.User, error) {
	accounts, err := c.userRepository.FindByEmailPrefix(ctx, phoneNumber+"-", "@client.internal")
	if err != nil {
		return nil, err
	}

	legacy, err := c.userRepository.FindByEmails(ctx, user.LegacyEmails(phoneNumber))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(accounts))
	for _, u := range accounts {
		seen[u.ID] = true
	}
	for _, u := range legacy {
		if !seen[u.ID] {
			accounts = append(accounts, u)
		}
	}

	return accounts, nil
}

// sendPin envia o PIN por SMS, tolerante a falha
func (c *PasswordController) sendPin(phoneNumber, pin string) bool {
	sctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	message := fmt.Sprintf("Sua nova senha de acesso é %s", pin)
	if err := c.smsSender.Send(sctx, phoneNumber, message); err != nil {
		c.log.Warn("falha ao enviar SMS do PIN", "phone", phoneNumber, "error", err)
		return false
	}
	return true
}

// generatePin gera um PIN numérico de 6 dígitos
func generatePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
