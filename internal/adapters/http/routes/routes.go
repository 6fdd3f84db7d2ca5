package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"smartbank-api/internal/adapters/http/handlers"
	"smartbank-api/internal/adapters/http/middleware"
	"smartbank-api/internal/adapters/mockdata"
	"smartbank-api/internal/adapters/persistence/repositories"
	"smartbank-api/internal/adapters/remote"
	"smartbank-api/internal/config"
	"smartbank-api/internal/core/domain"
	"smartbank-api/internal/core/services"
)

// Setup configures all routes for the application. db may be nil in
// mock data mode.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories: fixture-backed or MySQL, fixed at process start
	var (
		customerRepo    repositories.CustomerRepository
		transactionRepo repositories.TransactionRepository
	)
	if cfg.IsMock() {
		customerRepo = mockdata.NewCustomerRepository()
		transactionRepo = mockdata.NewTransactionRepository()
	} else {
		customerRepo = repositories.NewCustomerRepository(db)
		transactionRepo = repositories.NewTransactionRepository(db)
	}

	// Services
	customerService := services.NewCustomerService(customerRepo)
	transactionService := services.NewTransactionService(customerRepo, transactionRepo)
	dashboardService := services.NewDashboardService(customerRepo, transactionRepo)
	loanService := services.NewLoanService(nil)

	// Evaluator: local scorer or remote proxy, fixed at process start
	var evaluator services.LoanEvaluator = loanService
	if cfg.LoanMode == config.LoanModeRemote {
		evaluator = remote.NewLoanClient(cfg.Loan.RemoteURL)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(cfg)
	customerHandler := handlers.NewCustomerHandler(customerService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	loanHandler := handlers.NewLoanHandler(evaluator, loanService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public; login gets the stricter limiter)
	auth := app.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	// Protected routes: every group below requires a session
	guard := middleware.SessionGuard(cfg)

	customers := app.Group("/customers", guard)
	customers.Get("/", middleware.RequireRole(domain.RoleStaff), customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	transactions := app.Group("/transactions", guard)
	transactions.Post("/add", transactionHandler.Add)
	transactions.Get("/:customerID", transactionHandler.List)
	transactions.Get("/:customerID/analytics", transactionHandler.Analytics)

	loan := app.Group("/loan", guard)
	loan.Post("/predict", loanHandler.Predict)
	loan.Get("/model-info", loanHandler.ModelInfo)

	app.Get("/dashboard", guard, dashboardHandler.Get)
}
