package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/client"
	"github.com/hugohenrick/credit-manager/internal/domain/user"
	"github.com/hugohenrick/credit-manager/pkg/auth"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepository user.Repository
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository) *AuthController {
	return &AuthController{
		userRepository: userRepository,
	}
}

// Login autentica um usuário do tenant e retorna um token JWT
// @Summary Autentica um usuário
// @Description Verifica as credenciais do usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Buscar o usuário pelo email
	u, err := c.userRepository.FindByEmail(ctx, request.TenantID, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	c.authenticate(ctx, u, request.Password)
}

// ClientLogin autentica um cliente do portal pelo telefone.
// O email de login é sintético, então a resolução tenta o formato atual
// (telefone + tenant) e cai para os formatos legados quando necessário.
// @Summary Autentica um cliente do portal
// @Description Resolve o email sintético a partir do telefone e autentica o cliente
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.ClientLoginRequest true "Credenciais do cliente"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/client-login [post]
func (c *AuthController) ClientLogin(ctx *gin.Context) {
	var request dto.ClientLoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// O telefone vira padrão de busca de email sintético; só o formato
	// local estrito é aceito
	if !client.ValidPhone(request.PhoneNumber) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Telefone inválido", "O telefone deve ter o formato 0XXXXXXXXX"))
		return
	}

	u, err := c.resolveClientIdentity(ctx, request.PhoneNumber, request.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Telefone ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar cliente", err.Error()))
		return
	}

	c.authenticate(ctx, u, request.Password)
}

// resolveClientIdentity busca a identidade de um cliente pelo telefone,
// tentando o formato sintético atual e depois os legados
func (c *AuthController) resolveClientIdentity(ctx *gin.Context, phoneNumber, tenantID string) (*user.User, error) {
	if tenantID != "" {
		u, err := c.userRepository.FindByExactEmail(ctx, user.SyntheticEmail(phoneNumber, tenantID))
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	users, err := c.userRepository.FindByEmails(ctx, user.LegacyEmails(phoneNumber))
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if tenantID == "" || u.HasAccessToTenant(tenantID) {
			return u, nil
		}
	}

	// Sem tenant informado e sem formato legado: tentar o prefixo do
	// formato atual em qualquer tenant
	if tenantID == "" {
		matches, err := c.userRepository.FindByEmailPrefix(ctx, phoneNumber+"-", "@client.internal")
		if err != nil {
			return nil, err
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// authenticate valida a senha, gera o token e responde o login
func (c *AuthController) authenticate(ctx *gin.Context, u *user.User, password string) {
	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", "Sua conta está desativada ou bloqueada"))
		return
	}

	if !u.CheckPassword(password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
		return
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao configurar autenticação", err.Error()))
		return
	}

	token, err := jwtService.GenerateToken(u)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	// Registrar o último login (falha aqui não impede a autenticação)
	_ = c.userRepository.UpdateLastLogin(ctx, u.ID)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        *dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(jwtService.Expiration()),
	})
}
