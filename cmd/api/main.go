package main

import (
	"log"

	"github.com/genzlaundry/pos-api/internal/application/service"
	"github.com/genzlaundry/pos-api/internal/config"
	"github.com/genzlaundry/pos-api/internal/infrastructure/kvstore"
	"github.com/genzlaundry/pos-api/internal/infrastructure/repository"
	"github.com/genzlaundry/pos-api/internal/presentation/http/handler"
	"github.com/genzlaundry/pos-api/internal/presentation/http/routes"
	"github.com/genzlaundry/pos-api/pkg/billnumber"
	"github.com/genzlaundry/pos-api/pkg/printer"
	"github.com/genzlaundry/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the key-value store backend
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer store.Close()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	billRepo := repository.NewBillRepository(store)
	configRepo := repository.NewShopConfigRepository(store)

	// Initialize printers
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.ReceiptType,
		cfg.Printer.ReceiptUSBPath,
		cfg.Printer.ReceiptAddress,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize receipt printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	tagPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.TagType,
		cfg.Printer.TagUSBPath,
		cfg.Printer.TagAddress,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize tag printer: %v", err)
		tagPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	numbers := billnumber.New(cfg.Bill.NumberPrefix)
	printerService := service.NewPrinterService(
		receiptPrinter,
		tagPrinter,
		cfg.Printer.ReceiptWidth,
		cfg.Printer.ReceiptType,
		cfg.Printer.TagType,
	)
	orderService := service.NewOrderService()
	billingService := service.NewBillingService(orderService, billRepo, configRepo, printerService, numbers)
	billService := service.NewPendingBillService(billRepo, numbers)
	settingsService := service.NewSettingsService(configRepo)
	authService, err := service.NewAuthService(cfg.Admin, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Billing:   handler.NewBillingHandler(billingService),
		Bill:      handler.NewBillHandler(billService, billingService),
		QuickItem: handler.NewQuickItemHandler(),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, store backend: %s", cfg.App.Env, cfg.Store.Backend)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore opens the configured key-value store backend.
func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "redis":
		return kvstore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
	case "postgres":
		return kvstore.NewPostgresStore(cfg.Database.DSN())
	default:
		return kvstore.NewFileStore(cfg.Store.FilePath)
	}
}
