package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterTenantRoutes registra as rotas do módulo de tenants
func RegisterTenantRoutes(r *gin.RouterGroup, tenantController *controller.TenantController, jwtService *auth.JWTService) {
	// Registro de tenant é público
	r.POST("/tenants", tenantController.Create)

	tenants := r.Group("/tenants")
	tenants.Use(middleware.AuthMiddleware(jwtService))
	{
		tenants.GET("", tenantController.List)
		tenants.GET("/:id", tenantController.Get)
		tenants.PUT("/:id", tenantController.Update)
		tenants.PATCH("/:id/status", tenantController.UpdateStatus)
	}
}
