// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "spendwise/internal/api"
	"spendwise/internal/api/handler"
	"spendwise/internal/config"
	"spendwise/internal/repository"
	"spendwise/internal/repository/postgres"
	"spendwise/internal/service"
	"spendwise/internal/util"
	"spendwise/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	WalletRepository      repository.WalletRepository
	CategoryRepository    repository.CategoryRepository
	TransactionRepository repository.TransactionRepository
	BudgetRepository      repository.BudgetRepository

	// Services
	AuthService     service.AuthService
	WalletService   service.WalletService
	CategoryService service.CategoryService
	BudgetService   service.BudgetService
	LedgerService   service.LedgerService
	ReportService   service.ReportService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply schema migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database schema up to date.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.BudgetRepository = postgres.NewBudgetRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.CategoryRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		app.Config.JWTSecret,
		app.Config.TokenTTL,
		app.Config.BcryptCost,
	)
	app.LedgerService = service.NewLedgerService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.CategoryRepository,
		app.TransactionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.WalletService = service.NewWalletService(app.DB, app.WalletRepository)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository)
	app.BudgetService = service.NewBudgetService(app.DB, app.BudgetRepository, app.CategoryRepository)
	app.ReportService = service.NewReportService(app.DB, app.TransactionRepository, app.BudgetRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(app.AuthService, app.Logger),
		Wallet:      handler.NewWalletHandler(app.WalletService, app.Logger),
		Category:    handler.NewCategoryHandler(app.CategoryService, app.Logger),
		Transaction: handler.NewTransactionHandler(app.LedgerService, app.Logger),
		Budget:      handler.NewBudgetHandler(app.BudgetService, app.ReportService, app.Logger),
		Dashboard:   handler.NewDashboardHandler(app.ReportService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, app.Config.JWTSecret, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
