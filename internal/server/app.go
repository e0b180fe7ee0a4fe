// Package server assembles the application and owns the HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/JakeFAU/talenthub-backend/internal/api"
	"github.com/JakeFAU/talenthub-backend/internal/config"
	"github.com/JakeFAU/talenthub-backend/internal/jobs"
	"github.com/JakeFAU/talenthub-backend/internal/telemetry"
)

// App contains the application's dependencies.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	registry  *jobs.Registry
	apiServer *api.Server
}

// Build creates the application's dependencies.
func Build(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := jobs.Default()

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.New()
		metrics.SetJobPostings(registry.Len())
	}

	apiServer, err := api.NewServer(registry, cfg, metrics, logger.Named("api"))
	if err != nil {
		return nil, fmt.Errorf("api server init failed: %w", err)
	}

	logger.Info("application built",
		zap.String("addr", cfg.Addr()),
		zap.Int("job_postings", registry.Len()),
		zap.Strings("cors_origins", cfg.CORS.AllowedOrigins),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	return &App{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		apiServer: apiServer,
	}, nil
}

// Handler exposes the routed API, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.apiServer.Handler()
}

// Run binds the configured address and serves until the context is canceled
// or SIGINT/SIGTERM arrives. A bind failure is returned immediately.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr(), err)
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests within the configured shutdown timeout. Serve closes ln.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.apiServer.Handler(),
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout(),
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server started", zap.String("addr", ln.Addr().String()))
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	a.logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	a.logger.Info("shutdown complete")
	return nil
}
