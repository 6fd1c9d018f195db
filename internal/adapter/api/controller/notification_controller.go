package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/dto"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/domain/notification"
	tenantpkg "github.com/hugohenrick/credit-manager/pkg/tenant"
)

// NotificationController gerencia as notificações internas do usuário
type NotificationController struct {
	notificationRepository notification.Repository
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(notificationRepository notification.Repository) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
	}
}

// List lista as notificações do usuário autenticado
// @Summary Lista as notificações
// @Description Retorna as notificações do usuário, mais recentes primeiro
// @Tags notifications
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.NotificationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	userID := ctx.GetString("user_id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	notifications, err := c.notificationRepository.List(ctx, tenantID, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar notificações", err.Error()))
		return
	}

	unread, err := c.notificationRepository.CountUnread(ctx, tenantID, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, unread, pagination.Page, pagination.PageSize))
}

// MarkRead marca uma notificação como lida
// @Summary Marca uma notificação como lida
// @Tags notifications
// @Produce json
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if err := c.notificationRepository.MarkRead(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Notificação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação marcada como lida", nil))
}

// MarkAllRead marca todas as notificações do usuário como lidas
// @Summary Marca todas as notificações como lidas
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	userID := ctx.GetString("user_id")

	if err := c.notificationRepository.MarkAllRead(ctx, tenantID, userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificações marcadas como lidas", nil))
}

// Delete remove uma notificação
// @Summary Remove uma notificação
// @Tags notifications
// @Produce json
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	tenantID := tenantpkg.GetTenantID(ctx)
	id := ctx.Param("id")

	if err := c.notificationRepository.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Notificação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação removida com sucesso", nil))
}
