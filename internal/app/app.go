// Package app wires configuration, adapters, services, and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/svadhyaya/padaccheda-backend/internal/config"
	"github.com/svadhyaya/padaccheda-backend/internal/transport/middleware"
	"github.com/svadhyaya/padaccheda-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the translation pipeline, and serves HTTP until the
// context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("model_provider", cfg.Model.Provider),
		slog.String("model", cfg.Model.ModelName()),
		slog.String("log_level", cfg.Log.Level),
	)

	svc, dict, err := BuildTranslator(cfg, logger)
	if err != nil {
		return err
	}

	translateHandler := rest.NewTranslateHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(dict, BuildVersion())

	translateMW := []middleware.Middleware{}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		translateMW = append(translateMW, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	mux := http.NewServeMux()
	mux.Handle("/api/translate", middleware.Chain(translateMW...)(http.HandlerFunc(translateHandler.Translate)))
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/live", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("grace", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
