package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studiofin/studiofin/internal/adapter/http/handler"
	"github.com/studiofin/studiofin/internal/adapter/http/middleware"
	"github.com/studiofin/studiofin/internal/infrastructure/auth"
	"github.com/studiofin/studiofin/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	JobHandler       *handler.JobHandler
	InvoiceHandler   *handler.InvoiceHandler
	CashflowHandler  *handler.CashflowHandler
	AdminHandler     *handler.AdminHandler
	ReferenceHandler *handler.ReferenceHandler
	DashboardHandler *handler.DashboardHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	JWTManager       *auth.JWTManager
	Logging          *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Financial mutations require the admin role; reads and
		// bookkeeping of one's own work do not.
		admin := func(r chi.Router) chi.Router {
			if cfg.JWTManager != nil {
				return r.With(middleware.RequireAdmin)
			}

			return r
		}

		// Jobs
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", cfg.JobHandler.Create)
			r.Get("/", cfg.JobHandler.List)
			r.Delete("/{id}", cfg.JobHandler.Delete)
		})

		// Invoices
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.Create)
			r.Get("/", cfg.InvoiceHandler.List)
			r.Get("/{id}", cfg.InvoiceHandler.Get)
			r.Post("/{id}/preview", cfg.InvoiceHandler.Preview)
			r.Post("/{id}/send", cfg.InvoiceHandler.Send)
			admin(r).Post("/{id}/cancel", cfg.InvoiceHandler.Cancel)
			admin(r).Post("/{id}/settle", cfg.InvoiceHandler.Settle)
			admin(r).Delete("/{id}", cfg.InvoiceHandler.Delete)
		})

		// Ledger
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.CashflowHandler.List)
			admin(r).Post("/expenses", cfg.CashflowHandler.CreateExpense)
			admin(r).Post("/payouts", cfg.CashflowHandler.CreatePayout)
			admin(r).Delete("/{id}", cfg.CashflowHandler.Delete)
		})

		// Adjustments
		r.Route("/adjustments", func(r chi.Router) {
			admin(r).Post("/bonus", cfg.AdminHandler.IssueBonus)
			admin(r).Post("/return", cfg.AdminHandler.ReturnToFund)
			r.Get("/free-cash", cfg.AdminHandler.FreeCash)
		})

		// Admin
		r.Route("/admin", func(r chi.Router) {
			r.Get("/settings", cfg.AdminHandler.GetSettings)
			admin(r).Put("/settings", cfg.AdminHandler.UpdateSettings)
			r.Get("/fund", cfg.AdminHandler.GetFund)
			r.Get("/team", cfg.AdminHandler.GetTeam)
		})

		// Reference data
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", cfg.ReferenceHandler.CreateClient)
			r.Get("/", cfg.ReferenceHandler.ListClients)
			r.Put("/{id}", cfg.ReferenceHandler.UpdateClient)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.ReferenceHandler.CreateCategory)
			r.Get("/", cfg.ReferenceHandler.ListCategories)
			r.Delete("/{id}", cfg.ReferenceHandler.DeleteCategory)
		})
		r.Route("/work-types", func(r chi.Router) {
			r.Post("/", cfg.ReferenceHandler.CreateWorkType)
			r.Get("/", cfg.ReferenceHandler.ListWorkTypes)
			r.Put("/{id}", cfg.ReferenceHandler.UpdateWorkType)
		})

		// Dashboard
		r.Get("/dashboard", cfg.DashboardHandler.Overview)
	})

	return r
}
