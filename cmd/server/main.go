package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/packerp/backend/internal/application/catalog"
	stockapp "github.com/packerp/backend/internal/application/stock"
	tradeapp "github.com/packerp/backend/internal/application/trade"
	"github.com/packerp/backend/internal/infrastructure/config"
	"github.com/packerp/backend/internal/infrastructure/event"
	"github.com/packerp/backend/internal/infrastructure/logger"
	"github.com/packerp/backend/internal/infrastructure/notifier"
	"github.com/packerp/backend/internal/infrastructure/persistence"
	"github.com/packerp/backend/internal/interfaces/http/handler"
	"github.com/packerp/backend/internal/interfaces/http/middleware"
	"github.com/packerp/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PackERP Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	packageRepo := persistence.NewGormPackageRepository(db.DB)
	plateRepo := persistence.NewGormPlateRepository(db.DB)
	cartonRepo := persistence.NewGormCartonRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	orderProductRepo := persistence.NewGormOrderProductRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	invoiceOrderProductRepo := persistence.NewGormInvoiceOrderProductRepository(db.DB)

	// Transaction scope for all-or-nothing stock batches
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewStockWentNegativeHandler(log))

	// Stock report notifier, selected by configured transport
	var stockNotifier stockapp.StockReportNotifier
	switch cfg.Notifier.Transport {
	case "redis":
		redisNotifier, err := notifier.NewRedisStockReportNotifier(&cfg.Redis, cfg.Notifier.Channel)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisNotifier.Close(); err != nil {
				log.Error("Error closing Redis notifier", zap.Error(err))
			}
		}()
		stockNotifier = redisNotifier
		log.Info("Stock reports published to Redis",
			zap.String("addr", cfg.Redis.Addr()),
			zap.String("channel", cfg.Notifier.Channel),
		)
	default:
		stockNotifier = stockapp.NewLoggingStockReportNotifier(log)
	}

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, packageRepo)
	packageService := catalogapp.NewPackageService(packageRepo, plateRepo, cartonRepo)
	materialService := catalogapp.NewMaterialService(plateRepo, cartonRepo)
	reductionService := stockapp.NewReductionService(txScope, stockNotifier, eventBus, log)
	productionService := stockapp.NewProductionService(txScope, eventBus, log)
	orderService := tradeapp.NewOrderService(
		orderRepo,
		orderProductRepo,
		invoiceRepo,
		invoiceOrderProductRepo,
		packageRepo,
		reductionService,
		log,
	)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	packageHandler := handler.NewPackageHandler(packageService)
	materialHandler := handler.NewMaterialHandler(materialService)
	stockHandler := handler.NewStockHandler(productionService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(productHandler).
		Register(packageHandler).
		Register(materialHandler).
		Register(stockHandler).
		Register(orderHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
