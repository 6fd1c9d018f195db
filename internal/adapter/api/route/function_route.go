package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterFunctionRoutes registra as rotas das operações privilegiadas
// (provisionamento de acesso, reset de senha e SMS avulso)
func RegisterFunctionRoutes(
	r *gin.RouterGroup,
	clientUserController *controller.ClientUserController,
	passwordController *controller.PasswordController,
	smsController *controller.SmsController,
	jwtService *auth.JWTService,
) {
	functions := r.Group("/functions")
	{
		// Reset de senha é público: o cliente esqueceu a senha e só tem o telefone
		functions.POST("/reset-password", passwordController.Reset)

		authed := functions.Group("")
		authed.Use(middleware.AuthMiddleware(jwtService))
		{
			authed.POST("/client-users", clientUserController.Create)
			authed.POST("/send-transaction-sms", smsController.SendTransactionSms)
		}
	}
}
