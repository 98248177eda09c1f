package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/pdv-backoffice/docs"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/repository"
	"github.com/hugohenrick/pdv-backoffice/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria a aplicação: conexão, schema, seed e rotas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresPool()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		database.SeedSampleData(ctx, db, log)
	}

	// Repositórios
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Controllers
	productController := controller.NewProductController(productRepo, log)
	customerController := controller.NewCustomerController(customerRepo, log)
	inventoryController := controller.NewInventoryController(inventoryRepo, productRepo, log)
	saleController := controller.NewSaleController(saleRepo, log)
	paymentController := controller.NewPaymentController(paymentRepo, log)
	reportController := controller.NewReportController(reportRepo, inventoryRepo, log)
	authController := controller.NewAuthController(userRepo, log)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "pdv-backoffice",
		})
	})

	route.RegisterAuthRoutes(api, authController)
	route.RegisterSetupRoutes(api, authController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterInventoryRoutes(api, inventoryController)
	route.RegisterSaleRoutes(api, saleController)
	route.RegisterPaymentRoutes(api, paymentController)
	route.RegisterReportRoutes(api, reportController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8005"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
