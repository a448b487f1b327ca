package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/config"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/infrastructure/database"
	"github.com/naturenectar/billing-api/internal/infrastructure/repository"
	"github.com/naturenectar/billing-api/internal/presentation/http/handler"
	"github.com/naturenectar/billing-api/internal/presentation/http/middleware"
	"github.com/naturenectar/billing-api/internal/presentation/http/routes"
	"github.com/naturenectar/billing-api/pkg/oauth"
	"github.com/naturenectar/billing-api/pkg/printer"
	"github.com/naturenectar/billing-api/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedAdminUser(db, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	receiverRepo := repository.NewReceiverRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Auth plumbing
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)
	googleOAuth := oauth.NewGoogleOAuth(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)

	// Thermal printer
	p, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Fatalf("Failed to configure printer: %v", err)
	}
	defer p.Close()

	// Services
	convention := enum.ParsePriceConvention(cfg.Billing.PriceConvention)
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuth)
	itemService := service.NewItemService(itemRepo)
	receiverService := service.NewReceiverService(receiverRepo)
	billingService := service.NewBillingService(itemRepo, receiverRepo, invoiceRepo, convention)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	printerService := service.NewPrinterService(p, invoiceRepo, service.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
		GSTIN:   cfg.Shop.GSTIN,
	}, cfg.Printer.Type)

	// Handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Item:     handler.NewItemHandler(itemService),
		Receiver: handler.NewReceiverHandler(receiverService),
		Billing:  handler.NewBillingHandler(billingService),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	routes.SetupRoutes(router, handlers, jwtManager, idempotencyRepo, rateLimiter)

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s (env=%s, convention=%s)", cfg.App.Name, addr, cfg.App.Env, convention)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
