package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/controller"
	"github.com/hugohenrick/credit-manager/internal/adapter/api/route"
	"github.com/hugohenrick/credit-manager/internal/adapter/repository"
	"github.com/hugohenrick/credit-manager/internal/infrastructure/database"
	"github.com/hugohenrick/credit-manager/pkg/auth"
	"github.com/hugohenrick/credit-manager/pkg/config"
	"github.com/hugohenrick/credit-manager/pkg/logger"
	"github.com/hugohenrick/credit-manager/pkg/metrics"
	"github.com/hugohenrick/credit-manager/pkg/notify"
	"github.com/hugohenrick/credit-manager/pkg/sms"
	"github.com/hugohenrick/credit-manager/pkg/tenant"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	cfg    *config.Config
	log    logger.Logger
}

// NewApp monta a aplicação: banco, repositórios, controllers e rotas
func NewApp() (*App, error) {
	cfg := config.Load()
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	tenantRepo := repository.NewTenantRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	superAdminRepo := repository.NewSuperAdminRepository(db)

	// Integrações externas
	smsSender := sms.NewClient(cfg.SmsGatewayURL, cfg.SmsAPIKey, cfg.SmsSender)
	notifier := notify.NewWebhookNotifier(cfg.WebhookURL, cfg.WebhookToken)

	// Controllers
	authController := controller.NewAuthController(userRepo)
	tenantController := controller.NewTenantController(tenantRepo, userRepo)
	clientController := controller.NewClientController(clientRepo, invoiceRepo, transactionRepo, tenantRepo)
	productController := controller.NewProductController(productRepo, tenantRepo)
	invoiceController := controller.NewInvoiceController(invoiceRepo)
	transactionController := controller.NewTransactionController(transactionRepo)
	ledgerController := controller.NewLedgerController(ledgerRepo, clientRepo, invoiceRepo, tenantRepo, notificationRepo, smsSender, cfg, log)
	notificationController := controller.NewNotificationController(notificationRepo)
	clientUserController := controller.NewClientUserController(userRepo, clientRepo, notifier, smsSender, log)
	passwordController := controller.NewPasswordController(userRepo, smsSender, log)
	smsController := controller.NewSmsController(clientRepo, smsSender, log)
	superAdminController := controller.NewSuperAdminController(superAdminRepo, tenantRepo, userRepo, log)
	dashboardController := controller.NewDashboardController(clientRepo, invoiceRepo, transactionRepo)

	// Router e middlewares globais
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "tenant-id"},
		AllowCredentials: false,
	}))

	// Endpoint de métricas fora do grupo da API
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Validação de tenant nas rotas protegidas
	tenantValidator := repository.NewTenantValidator(tenantRepo)
	api.Use(tenant.Middleware(tenantValidator))

	route.RegisterAuthRoutes(api, authController)
	route.RegisterTenantRoutes(api, tenantController, jwtService)
	route.RegisterClientRoutes(api, clientController, jwtService)
	route.RegisterProductRoutes(api, productController, jwtService)
	route.RegisterLedgerRoutes(api, ledgerController, invoiceController, transactionController, jwtService)
	route.RegisterNotificationRoutes(api, notificationController, jwtService)
	route.RegisterFunctionRoutes(api, clientUserController, passwordController, smsController, jwtService)
	route.RegisterSuperAdminRoutes(api, superAdminController, jwtService)
	route.RegisterDashboardRoutes(api, dashboardController, jwtService)

	return &App{
		router: router,
		db:     db,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	a.log.Info("servidor iniciado", "port", a.cfg.ServerPort)
	return a.router.Run(":" + a.cfg.ServerPort)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
