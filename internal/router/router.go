package router

import (
	"log/slog"

	"github.com/anonto42/picgram/internal/handlers"
	"github.com/anonto42/picgram/internal/middleware"
	"github.com/anonto42/picgram/internal/repositories"
	"github.com/labstack/echo/v4"
)

// Options controls which optional routes are mounted.
type Options struct {
	// EnableReset mounts POST /admin/reset. Never set it in production.
	EnableReset bool
	Logger      *slog.Logger
}

// SetupRoutes configures all application routes and injects the store into the handlers
func SetupRoutes(e *echo.Echo, store *repositories.MemoryStore, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.GET("/health", handlers.HealthCheck)

	api := e.Group("")

	userHandler := handlers.NewUserHandler(store, store)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(store)
	postHandler.RegisterPostRoutes(api)

	followHandler := handlers.NewFollowHandler(store)
	followHandler.RegisterFollowRoutes(api)

	likeHandler := handlers.NewLikeHandler(store)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(store)
	commentHandler.RegisterCommentRoutes(api)

	feedHandler := handlers.NewFeedHandler(store)
	feedHandler.RegisterFeedRoutes(api)

	if opts.EnableReset {
		e.POST("/admin/reset", handlers.ResetStore(store))
		logger.Warn("store reset endpoint enabled", "route", "POST /admin/reset")
	}

	logger.Info("routes configured", "routes", len(e.Routes()))
}

// SetupMetricsRoutes mounts the latency report on the metrics server
func SetupMetricsRoutes(e *echo.Echo, recorder *middleware.LatencyRecorder) {
	e.GET("/health", handlers.HealthCheck)
	e.GET("/debug/latency", recorder.Handler)
}
