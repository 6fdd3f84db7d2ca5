package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartbank-api/internal/adapters/http/middleware"
	"smartbank-api/internal/adapters/http/routes"
	"smartbank-api/internal/adapters/persistence/models"
	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/config"
	"smartbank-api/internal/core/services"

	_ "smartbank-api/docs" // Swagger docs
)

// @title Smart Retail Banking Dashboard API
// @version 1.0
// @description Banking dashboard backend with demo sessions and rule-based loan predictions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@smartbank.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Signed session cookie set by /auth/login

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database (db data mode only; mock mode runs entirely
	// from in-process fixtures)
	var db *gorm.DB
	if !cfg.IsMock() {
		db, err = config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Println("✅ Database migration completed")

		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed sample data: %v", err)
		}

		// Demo feed: monthly salary credits for seeded customers
		customerRepo := repositories.NewCustomerRepository(db)
		transactionRepo := repositories.NewTransactionRepository(db)
		feedService := services.NewFeedService(
			customerRepo,
			services.NewTransactionService(customerRepo, transactionRepo),
		)
		feedService.Start()
		defer feedService.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Smart Retail Banking Dashboard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s | DATA: %s]", cfg.Port, cfg.AppMode, cfg.DataMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
