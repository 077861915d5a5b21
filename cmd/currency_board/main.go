package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/currency_board/internal/adapters/cbr"
	"github.com/SscSPs/currency_board/internal/core/services"
	"github.com/SscSPs/currency_board/internal/handlers"
	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/SscSPs/currency_board/internal/platform/config"
	"github.com/SscSPs/currency_board/internal/repositories/database/sqlite"
	"github.com/SscSPs/currency_board/web"
	"github.com/gin-gonic/gin"
)

// @title Currency Board
// @version 0.0.1
// @description Daily exchange rates and the users who follow them.

// @host localhost:1234
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// --- Build the store ---
	// Rates are fetched exactly once; without them there is nothing to serve.
	rateClient := cbr.NewClient(cbr.Config{
		URL:         cfg.RatesURL,
		Timeout:     cfg.RatesTimeout,
		CurrencyIDs: cfg.RatesCurrencyIDs,
	}, logger)

	store, err := sqlite.NewStore(context.Background(), rateClient, sqlite.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics("currency_board")
		r.Use(metrics.Middleware())
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	tmpl, err := web.ParseTemplates()
	if err != nil {
		logger.Error("Failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.SetHTMLTemplate(tmpl)

	serviceContainer := services.NewServiceContainer(store.Repositories())
	handlers.RegisterRoutes(r, cfg, serviceContainer, metrics)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}
