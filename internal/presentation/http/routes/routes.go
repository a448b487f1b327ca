package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/internal/presentation/http/handler"
	"github.com/naturenectar/billing-api/internal/presentation/http/middleware"
	"github.com/naturenectar/billing-api/pkg/utils"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Auth     *handler.AuthHandler
	Item     *handler.ItemHandler
	Receiver *handler.ReceiverHandler
	Billing  *handler.BillingHandler
	Invoice  *handler.InvoiceHandler
	Printer  *handler.PrinterHandler
}

// SetupRoutes registers all API routes
func SetupRoutes(
	router *gin.Engine,
	h *Handlers,
	jwtManager *utils.JWTManager,
	idempotencyRepo repository.IdempotencyRepository,
	rateLimiter *middleware.RateLimiter,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Everything else requires a valid token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	protected.Use(rateLimiter.Middleware())

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	items := protected.Group("/items")
	{
		items.POST("", h.Item.Create)
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}

	receivers := protected.Group("/receivers")
	{
		receivers.POST("", h.Receiver.Create)
		receivers.GET("", h.Receiver.List)
		receivers.GET("/:id", h.Receiver.Get)
		receivers.PUT("/:id", h.Receiver.Update)
		receivers.DELETE("/:id", h.Receiver.Delete)
	}

	bill := protected.Group("/bill")
	{
		bill.GET("", h.Billing.GetBill)
		bill.DELETE("", h.Billing.ClearBill)
		bill.POST("/items", h.Billing.AddItem)
		bill.PUT("/items/:item_id", h.Billing.UpdateItem)
		bill.DELETE("/items/:item_id", h.Billing.RemoveItem)

		// Invoice generation mints a clock-derived invoice number, so
		// retries must replay instead of re-running.
		bill.POST("/invoice", middleware.IdempotencyRequired(idempotencyRepo), h.Billing.GenerateInvoice)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id/payment-status", h.Invoice.UpdatePaymentStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/print", h.Printer.PrintInvoice)
	}

	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
