package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterNotificationRoutes registra as rotas do módulo de notificações
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController, jwtService *auth.JWTService) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(jwtService))
	{
		notifications.GET("", notificationController.List)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
		notifications.PATCH("/read-all", notificationController.MarkAllRead)
		notifications.DELETE("/:id", notificationController.Delete)
	}
}
