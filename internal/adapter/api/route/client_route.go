package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterClientRoutes registra as rotas do módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController, jwtService *auth.JWTService) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware(jwtService))
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
		clients.PATCH("/:id/status", clientController.UpdateStatus)
		clients.GET("/:id/balance", clientController.GetBalance)
	}
}
