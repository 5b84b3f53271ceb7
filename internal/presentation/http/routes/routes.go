package routes

import (
	"time"

	"github.com/genzlaundry/pos-api/internal/config"
	"github.com/genzlaundry/pos-api/internal/presentation/http/handler"
	"github.com/genzlaundry/pos-api/internal/presentation/http/middleware"
	"github.com/genzlaundry/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Billing   *handler.BillingHandler
	Bill      *handler.BillHandler
	QuickItem *handler.QuickItemHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Current order
	order := protected.Group("/order")
	{
		order.GET("", h.Order.Get)
		order.DELETE("", h.Order.Clear)
		order.POST("/items", h.Order.AddItem)
		order.PATCH("/items/:id", h.Order.UpdateQuantity)
		order.DELETE("/items/:id", h.Order.RemoveItem)
	}

	// Billing
	billing := protected.Group("/billing")
	{
		billing.POST("/preview", h.Billing.Preview)
		billing.POST("/process", h.Billing.Process)
		billing.POST("/tags", h.Billing.PrintTags)
	}

	// Pending bills and history
	bills := protected.Group("/bills")
	{
		bills.GET("/pending", h.Bill.ListPending)
		bills.GET("/history", h.Bill.ListHistory)
		bills.POST("/previous", h.Bill.AddPrevious)
		bills.POST("/:id/status", h.Bill.UpdateStatus)
		bills.POST("/:id/reprint", h.Bill.Reprint)
	}

	// Quick-add catalog
	protected.GET("/quick-items", h.QuickItem.List)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Printer
	protected.GET("/printer/status", h.Printer.Status)
	protected.POST("/printer/test", h.Printer.Test)
}
