package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterSuperAdminRoutes registra a rota do console de plataforma
func RegisterSuperAdminRoutes(r *gin.RouterGroup, superAdminController *controller.SuperAdminController, jwtService *auth.JWTService) {
	superAdmin := r.Group("/super-admin")
	superAdmin.Use(middleware.AuthMiddleware(jwtService))
	{
		superAdmin.POST("", superAdminController.Dispatch)
	}
}
