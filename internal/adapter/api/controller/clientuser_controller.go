package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/hugohenrick/credit-manager/pkg/logger"
	"github.com/hugohenrick/credit-manager/pkg/notify"
	"github.com/hugohenrick/credit-manager/pkg/sms"
)

// ClientUserController provisiona o acesso de clientes ao portal.
// A operação cria identidade, perfil e papel; se o perfil ou o papel
// falharem, os passos anteriores são desfeitos um a um.
type ClientUserController struct {
	userRepository   user.Repository
	clientRepository client.Repository
	notifier         notify.Notifier
	smsSender        sms.Sender
	log              logger.Logger
}

// NewClientUserController cria uma nova instância de ClientUserController
func NewClientUserController(
	userRepository user.Repository,
	clientRepository client.Repository,
	notifier notify.Notifier,
	smsSender sms.Sender,
	log logger.Logger,
) *ClientUserController {
	return &ClientUserController{
		userRepository:   userRepository,
		clientRepository: clientRepository,
		notifier:         notifier,
		smsSender:        smsSender,
		log:              log,
	}
}

// Create provisiona a identidade de login de um cliente.
// Chamadas repetidas com o mesmo telefone e tenant são seguras: a segunda
// chamada atualiza a senha da identidade existente em vez de falhar.
// @Summary Provisiona acesso de cliente ao portal
// @Description Cria identidade, perfil e papel para o cliente, com rollback em falha parcial
// @Tags functions
// @Accept json
// @Produce json
// @Param request body dto.ClientUserRequest true "Dados do provisionamento"
// @Success 200 {object} dto.ClientUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /functions/client-users [post]
func (c *ClientUserController) Create(ctx *gin.Context) {
	var request dto.ClientUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !client.ValidPhone(request.PhoneNumber) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Telefone inválido", "O telefone deve ter o formato 0XXXXXXXXX"))
		return
	}

	// O chamador só provisiona clientes do próprio tenant
	if callerTenant := ctx.GetString("tenant_id"); callerTenant != "" && callerTenant != request.TenantID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado", "Não é permitido provisionar clientes de outro tenant"))
		return
	}

	cl, err := c.clientRepository.FindByID(ctx, request.TenantID, request.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	email := user.SyntheticEmail(request.PhoneNumber, request.TenantID)

	// Passo 1: criar ou reutilizar a identidade
	u, created, err := c.ensureIdentity(ctx, email, request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar identidade", err.Error()))
		return
	}

	// Passo 2: perfil
	now := time.Now()
	profile := &user.Profile{
		UserID:      u.ID,
		TenantID:    request.TenantID,
		Name:        request.Name,
		PhoneNumber: request.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.userRepository.UpsertProfile(ctx, profile); err != nil {
		c.rollback(ctx, u, created, false)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar perfil", err.Error()))
		return
	}

	// Passo 3: papel
	role := &user.RoleAssignment{
		UserID:    u.ID,
		TenantID:  request.TenantID,
		Role:      user.RoleClient,
		CreatedAt: now,
	}
	if err := c.userRepository.UpsertRole(ctx, role); err != nil {
		c.rollback(ctx, u, created, true)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atribuir papel", err.Error()))
		return
	}

	// Efeitos colaterais de melhor esforço, nunca bloqueiam o resultado
	smsSent := c.sendCredentials(cl, request.Password)
	c.notifyProvisioned(cl, email)

	ctx.JSON(http.StatusOK, dto.ClientUserResponse{
		UserID:        u.ID,
		ClientID:      request.ClientID,
		Email:         email,
		AlreadyExists: !created,
		SmsSent:       smsSent,
	})
}

// ensureIdentity cria a identidade ou, se já existir, atualiza a senha
func (c *ClientUserController) ensureIdentity(ctx *gin.Context, email string, request dto.ClientUserRequest) (*user.User, bool, error) {
	existing, err := c.userRepository.FindByExactEmail(ctx, email)
	if err == nil {
		hashed, err := hashPassword(request.Password)
		if err != nil {
			return nil, false, err
		}
		if err := c.userRepository.UpdatePassword(ctx, existing.ID, hashed); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	now := time.Now()
	u := &user.User{
		ID:        uuid.New().String(),
		TenantID:  request.TenantID,
		ClientID:  request.ClientID,
		Name:      request.Name,
		Email:     email,
		Role:      user.RoleClient,
		Status:    user.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(request.Password); err != nil {
		return nil, false, err
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		return nil, false, err
	}

	return u, true, nil
}

// rollback desfaz os passos anteriores na ordem inversa. A identidade só é
// removida se foi criada nesta chamada.
func (c *ClientUserController) rollback(ctx *gin.Context, u *user.User, created, profileCreated bool) {
	if profileCreated {
		if err := c.userRepository.DeleteProfile(ctx, u.ID); err != nil {
			c.log.Error("rollback do perfil falhou", "user_id", u.ID, "error", err)
		}
	}

	if created {
		if err := c.userRepository.Delete(ctx, u.ID); err != nil {
			c.log.Error("rollback da identidade falhou", "user_id", u.ID, "error", err)
		}
	}
}

// sendCredentials envia as credenciais por SMS, de forma síncrona mas
// tolerante a falha
func (c *ClientUserController) sendCredentials(cl *client.Client, password string) bool {
	sctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	message := fmt.Sprintf("Seu acesso ao portal foi criado. Login: %s Senha: %s", cl.PhoneNumber, password)
	if err := c.smsSender.Send(sctx, cl.PhoneNumber, message); err != nil {
		c.log.Warn("falha ao enviar SMS de credenciais", "phone", cl.PhoneNumber, "error", err)
		return false
	}
	return true
}

// notifyProvisioned avisa o canal externo sobre o novo acesso
func (c *ClientUserController) notifyProvisioned(cl *client.Client, email string) {
	go func() {
		nctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		markdown := fmt.Sprintf("**Novo acesso de cliente**\n\nCliente: %s\nEmail: `%s`", cl.Name, email)
		if err := c.notifier.Notify(nctx, "Acesso de cliente provisionado", markdown); err != nil {
			c.log.Warn("falha ao notificar canal externo", "client_id", cl.ID, "error", err)
		}
	}()
}

// hashPassword gera o hash bcrypt de uma senha
func hashPassword(password string) (string, error) {
	u := user.User{}
	if err := u.SetPassword(password); err != nil {
		return "", err
	}
	return u.Password, nil
}
