package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/middleware"
)

// RegisterLedgerRoutes registra as rotas de vendas, faturas, pagamentos e extrato
func RegisterLedgerRoutes(
	r *gin.RouterGroup,
	ledgerController *controller.LedgerController,
	invoiceController *controller.InvoiceController,
	transactionController *controller.TransactionController,
	jwtService *auth.JWTService,
) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware(jwtService))
	{
		sales.POST("", ledgerController.RecordSale)
	}

	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware(jwtService))
	{
		invoices.GET("", invoiceController.List)
		invoices.GET("/:id", invoiceController.Get)
		invoices.PUT("/:id", invoiceController.Update)
		invoices.DELETE("/:id", invoiceController.Delete)
		invoices.POST("/:id/payments", ledgerController.RecordPayment)
	}

	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware(jwtService))
	{
		transactions.GET("", transactionController.List)
		transactions.GET("/:id", transactionController.Get)
	}
}
