package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soso009n/Ecopoint/internal/config"
	"github.com/soso009n/Ecopoint/internal/handler"
	"github.com/soso009n/Ecopoint/internal/middleware"
	"github.com/soso009n/Ecopoint/internal/repository"
	"github.com/soso009n/Ecopoint/internal/service"
	"github.com/soso009n/Ecopoint/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	repo, err := repository.New(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	// File storage for catalog/reward images and avatars
	store, err := storage.New(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	// Create services
	authSvc := service.NewAuthService(repo, cfg)
	profileSvc := service.NewProfileService(repo)
	wasteSvc := service.NewWasteService(repo)
	rewardSvc := service.NewRewardService(repo)
	txSvc := service.NewTransactionService(repo)
	ledgerSvc := service.NewLedgerService(repo)

	// Create handlers
	h := handler.New(cfg, authSvc, profileSvc, wasteSvc, rewardSvc, txSvc, ledgerSvc, store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", h.Health)

	// Uploaded images (waste, rewards, avatars)
	app.Static(cfg.Storage.BaseURL, store.Dir())

	// Public API (no auth required)
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)

	// API routes with bearer-token authentication
	api := app.Group("/api", middleware.Auth(cfg))

	// User
	api.Get("/user/me", h.GetMe)
	api.Put("/user/password", h.UpdatePassword)

	// Profile
	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.UpdateProfile)
	api.Post("/profile/avatar", h.UploadAvatar)

	// Waste catalog
	api.Get("/waste", h.GetWasteCatalog)
	api.Get("/waste/:id", h.GetWaste)

	// Rewards
	api.Get("/rewards", h.GetRewards)
	api.Get("/rewards/:id", h.GetReward)
	api.Post("/rewards/:id/redeem", h.RedeemReward)

	// Ledger
	api.Post("/transactions/deposit", h.CreateDeposit)
	api.Get("/transactions", h.GetHistory)
	api.Get("/transactions/summary", h.GetSummary)
	api.Delete("/transactions/:id", h.DeleteTransaction)

	// Admin panel routes (catalog management)
	admin := app.Group("/api/admin", middleware.Auth(cfg), middleware.AdminOnly())
	admin.Post("/waste", h.CreateWaste)
	admin.Put("/waste/:id", h.UpdateWaste)
	admin.Delete("/waste/:id", h.DeleteWaste)
	admin.Post("/waste/image", h.UploadWasteImage)
	admin.Post("/rewards", h.CreateReward)
	admin.Put("/rewards/:id", h.UpdateReward)
	admin.Delete("/rewards/:id", h.DeleteReward)
	admin.Post("/rewards/image", h.UploadRewardImage)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
