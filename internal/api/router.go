package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/handlers"
	custommiddleware "github.com/lsobral/Game-Price-Indicators-Backend/internal/api/middleware"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/config"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(gameService *service.GameService, indicatorService *service.IndicatorService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler([]string{"isthereanydeal", "imf"})
			r.Get("/health", systemHandler.Health)
		})

		gameHandler := handlers.NewGameHandler(gameService)
		r.Get("/prices", gameHandler.Prices)
		r.Get("/games_list", gameHandler.GamesList)

		indicatorHandler := handlers.NewIndicatorHandler(indicatorService)
		r.Get("/economic-indicators", indicatorHandler.EconomicIndicators)
		r.Get("/indicators_list", indicatorHandler.IndicatorsList)
		r.Get("/countries_list", indicatorHandler.CountriesList)
	})

	return r
}
