// Package main is the entrypoint for the EquipScan API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvasanth/equipscan/internal/ai"
	"github.com/mvasanth/equipscan/internal/api"
	"github.com/mvasanth/equipscan/internal/api/handler"
	mw "github.com/mvasanth/equipscan/internal/api/middleware"
	"github.com/mvasanth/equipscan/internal/api/response"
	"github.com/mvasanth/equipscan/internal/config"
	"github.com/mvasanth/equipscan/internal/ocr"
	"github.com/mvasanth/equipscan/internal/pipeline"
	"github.com/mvasanth/equipscan/pkg/models"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Create AI provider
	aiProvider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return fmt.Errorf("create AI provider: %w", err)
	}
	slog.Info("AI provider initialized", "provider", aiProvider.Name())

	// 3. Create OCR client
	visionClient := ocr.NewGoogleVision(cfg.Vision.BaseURL, cfg.Vision.APIKey, cfg.Vision.Timeout)

	// 4. Build the analysis pipeline
	svc := pipeline.NewService(aiProvider, visionClient, cfg.AI.InferenceTimeout)

	// 5. Build router with dependencies
	auth := mw.NewAuth(cfg.Auth.APIKeyHash)
	if !auth.Enabled() {
		slog.Warn("authentication disabled: EQUIPSCAN_API_KEY_HASH not set")
	}
	rateLimit := mw.NewRateLimit(cfg.Auth.RateLimitPerMin)

	deps := api.Dependencies{
		Auth:      auth,
		RateLimit: rateLimit,

		HealthHandler:  healthHandler(aiProvider),
		AnalyzeHandler: handler.NewAnalyzeHandler(svc),
	}

	router := api.NewRouter(deps)

	// 6. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler reports service status and the active AI provider.
func healthHandler(provider models.AIProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, map[string]any{
			"status":      "ok",
			"ai_provider": provider.Name(),
		})
	}
}
