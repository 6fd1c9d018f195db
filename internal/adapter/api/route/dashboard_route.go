package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterDashboardRoutes registra a rota do painel do tenant
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController, jwtService *auth.JWTService) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(jwtService))
	{
		dashboard.GET("", dashboardController.Get)
	}
}
