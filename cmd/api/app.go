package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "haversine/docs" // Ensure docs are imported
	"haversine/internal/config"
	"haversine/internal/distance"
	"haversine/internal/metrics"
	"haversine/internal/middleware"
	"haversine/internal/timezone"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	distanceService distance.Service
	timezoneService timezone.Service // nil when timezone annotation is disabled
	metrics         *metrics.Metrics
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	m := metrics.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Metrics(m))
	if len(cfg.App.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.App.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", middleware.HeaderXRequestID},
			ExposeHeaders: []string{"Content-Length", middleware.HeaderXRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}

	app := &App{
		router:          router,
		logger:          logger,
		distanceService: distance.NewDistanceService(logger),
		metrics:         m,
		cfg:             cfg,
	}

	if cfg.App.Timezones {
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		app.timezoneService = tzSvc
	}

	logger.Info("application initialized", "timezones", cfg.App.Timezones)

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
