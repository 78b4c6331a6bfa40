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

	"github.com/anonto42/picgram/internal/middleware"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/anonto42/picgram/internal/router"
	"github.com/anonto42/picgram/pkg/config"
	"github.com/anonto42/picgram/validators"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API and metrics servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, config.NewLogger(cfg, os.Stdout))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&port, "port", "p", "", "API listen port (overrides config)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store := repositories.NewMemoryStore(repositories.Options{
		ExploreDefaultLimit: cfg.Explore.DefaultLimit,
		ExploreMaxLimit:     cfg.Explore.MaxLimit,
		TrendingSize:        cfg.Explore.TrendingSize,
		Logger:              logger,
	})
	recorder := middleware.NewLatencyRecorder()

	api := newEcho()
	api.Validator = validators.NewValidator()
	config.SetupMiddleware(api, logger, recorder)
	router.SetupRoutes(api, store, router.Options{
		EnableReset: !cfg.IsProduction(),
		Logger:      logger,
	})

	metrics := newEcho()
	router.SetupMetricsRoutes(metrics, recorder)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return start(api, ":"+cfg.Port, "api", logger) })
	g.Go(func() error { return start(metrics, ":"+cfg.MetricsPort, "metrics", logger) })
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(api.Shutdown(shutdownCtx), metrics.Shutdown(shutdownCtx))
	})

	return g.Wait()
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return e
}

func start(e *echo.Echo, addr, name string, logger *slog.Logger) error {
	logger.Info("server listening", "server", name, "addr", addr)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
