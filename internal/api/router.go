package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/portfolio-json-api/internal/api/handlers"
	custommiddleware "github.com/ndewijer/portfolio-json-api/internal/api/middleware"
	"github.com/ndewijer/portfolio-json-api/internal/config"
	"github.com/ndewijer/portfolio-json-api/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, portfolioService *service.PortfolioService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(custommiddleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Must be registered before Route so sub-routers inherit them
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	systemHandler := handlers.NewSystemHandler(systemService)
	r.Get("/", systemHandler.Index)

	r.Route("/api/portfolios", func(r chi.Router) {
		portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
		r.Get("/", portfolioHandler.Portfolios)
		r.Post("/", portfolioHandler.CreatePortfolio)
		r.Delete("/{id}", portfolioHandler.DeletePortfolio)
	})

	return r
}
