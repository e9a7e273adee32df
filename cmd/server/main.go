package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/config"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/imf"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/itad"
	"github.com/lsobral/Game-Price-Indicators-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.ITAD.APIKey == "" {
		log.Println("Warning: ITAD_API_KEY is not set, deals API calls will be rejected upstream")
	}

	// Create upstream clients
	itadClient := itad.NewDealsClient(cfg.ITAD.BaseURL, cfg.ITAD.APIKey, cfg.ITAD.HistoryTimeout, cfg.ITAD.SearchTimeout)
	imfClient := imf.NewDataClient(cfg.IMF.BaseURL, cfg.IMF.Timeout)

	// Create services
	gameService := service.NewGameService(itadClient, cfg.GameTitles)
	indicatorService := service.NewIndicatorService(imfClient, cfg.IMF.Database, cfg.IndicatorCatalog)

	// Create router
	router := api.NewRouter(gameService, indicatorService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
