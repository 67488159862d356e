package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sistemapdv/sistema-pdv/cmd/api/docs"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/route"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	"github.com/sistemapdv/sistema-pdv/internal/infrastructure/database"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
	"github.com/sistemapdv/sistema-pdv/pkg/notifier"
	"github.com/sistemapdv/sistema-pdv/pkg/printer"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
// conectadas
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Conectar ao banco e aplicar migrações pendentes
	pool, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	if os.Getenv("SKIP_MIGRATIONS") == "" {
		if err := database.RunMigrations(); err != nil {
			pool.Close()
			return nil, err
		}
	}

	txManager := database.NewTxManager(pool)
	hub := notifier.NewHub()
	receiptPrinter := printer.New(printer.ConfigFromEnv())

	// Conta usada quando a operação não informa a conta de destino
	defaultAccountID := getEnv("PDV_CONTA_PADRAO", "00000000-0000-0000-0000-000000000001")

	// Repositórios
	categoryRepo := repository.NewCategoryRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	stockRepo := repository.NewStockRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	payableRepo := repository.NewPayableRepository(pool)
	receivableRepo := repository.NewReceivableRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	checkRepo := repository.NewCheckRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// Serviços
	stockService := service.NewStockService(txManager, productRepo, stockRepo, hub, appLogger)
	saleService := service.NewSaleService(txManager, saleRepo, productRepo, accountRepo, stockService, receiptPrinter, hub, defaultAccountID, appLogger)
	cashierService := service.NewCashierService(txManager, accountRepo, hub, defaultAccountID, appLogger)
	settlementService := service.NewSettlementService(txManager, payableRepo, receivableRepo, accountRepo, hub, defaultAccountID, appLogger)
	reconcileService := service.NewReconcileService(stockRepo, accountRepo, appLogger)

	// Controllers
	categoryController := controller.NewCategoryController(categoryRepo, appLogger)
	supplierController := controller.NewSupplierController(supplierRepo, appLogger)
	customerController := controller.NewCustomerController(customerRepo, saleRepo, receivableRepo, appLogger)
	userController := controller.NewUserController(userRepo, appLogger)
	productController := controller.NewProductController(productRepo, stockRepo, stockService, appLogger)
	saleController := controller.NewSaleController(saleService, appLogger)
	cashierController := controller.NewCashierController(cashierService, appLogger)
	financialController := controller.NewFinancialController(payableRepo, receivableRepo, expenseRepo, accountRepo, checkRepo, settlementService, appLogger)
	reportController := controller.NewReportController(reportRepo, reconcileService, appLogger)
	settingsController := controller.NewSettingsController(settingsRepo, appLogger)
	printerController := controller.NewPrinterController(receiptPrinter, reportRepo, appLogger)
	eventController := controller.NewEventController(hub, appLogger)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterCategoryRoutes(api, categoryController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterUserRoutes(api, userController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterCashierRoutes(api, cashierController)
	route.RegisterFinancialRoutes(api, financialController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterSettingsRoutes(api, settingsController)
	route.RegisterPrinterRoutes(api, printerController)
	route.RegisterEventRoutes(api, eventController)

	return &App{
		router: router,
		pool:   pool,
		logger: appLogger,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	addr := ":" + getEnv("PORT", "8080")
	a.logger.Info("servidor iniciado", "addr", addr)
	return a.router.Run(addr)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
