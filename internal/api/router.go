// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spendwise/internal/api/handler"
	authmw "spendwise/internal/api/middleware"
)

// Handlers bundles the per-resource HTTP handlers the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Wallet      *handler.WalletHandler
	Category    *handler.CategoryHandler
	Transaction *handler.TransactionHandler
	Budget      *handler.BudgetHandler
	Dashboard   *handler.DashboardHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, jwtSecret string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	// Everything else requires a verified owner.
	r.Group(func(r chi.Router) {
		r.Use(authmw.Authenticator(jwtSecret))

		r.Route("/wallets", func(r chi.Router) {
			r.Get("/", h.Wallet.List)
			r.Post("/", h.Wallet.Create)
			r.Put("/{walletID}", h.Wallet.Update)
			r.Delete("/{walletID}", h.Wallet.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Category.List)
			r.Post("/", h.Category.Create)
			r.Put("/{categoryID}", h.Category.Update)
			r.Delete("/{categoryID}", h.Category.Delete)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Transaction.List)
			r.Post("/", h.Transaction.Create)
			r.Put("/{transactionID}", h.Transaction.Update)
			r.Delete("/{transactionID}", h.Transaction.Delete)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", h.Budget.List)
			r.Post("/", h.Budget.Create)
			r.Get("/status", h.Budget.Status)
			r.Delete("/{budgetID}", h.Budget.Delete)
		})

		r.Get("/dashboard/summary", h.Dashboard.Summary)
	})

	return r
}
