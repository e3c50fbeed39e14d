// Command api is the Cartola scouting API server.
//
// Usage:
//
//	cartola-api
//	API_PORT=8080 STORE_DRIVER=postgres DATABASE_URL=postgres://... cartola-api

// @title Cartola Scouts API
// @version 1.0.0
// @description Read-only Cartola FC scouting API: season ranking, round history, player comparison and scout leaderboards.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Cartola Scouts
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/cartola-scouts/internal/api"
	"github.com/albapepper/cartola-scouts/internal/cache"
	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/db"
	"github.com/albapepper/cartola-scouts/internal/listener"
	"github.com/albapepper/cartola-scouts/internal/query"
	"github.com/albapepper/cartola-scouts/internal/store/backend"

	_ "github.com/albapepper/cartola-scouts/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Open store
	logger.Info("Connecting to store...", "driver", cfg.StoreDriver)
	st, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled, cfg.CacheTTL)
	go appCache.Run(ctx)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

	// Drop cached responses whenever the pipeline commits new tables
	if cfg.StoreDriver == config.DriverPostgres {
		go listener.Start(ctx, cfg.DatabaseURL, func(db.ReplacedEvent) { appCache.Purge() }, logger)
	}

	// Create router
	router := api.NewRouter(query.New(st), appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Cartola Scouts API",
			"addr", addr,
			"environment", cfg.Environment,
			"season", cfg.Season,
			"docs", fmt.Sprintf("http://localhost:%d/docs/index.html", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
