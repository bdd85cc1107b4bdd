package rest

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"relief-hub/app/port"
	"relief-hub/app/rest/handlers"
	custommw "relief-hub/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	FeedUsecase       port.FeedUsecase
	ReportUsecase     port.ReportUsecase
	SubmissionUsecase port.SubmissionUsecase
	HealthChecker     handlers.HealthChecker
	ReportWindowDays  int
	EnableRateLimit   bool
	EnableDebug       bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) (*echo.Echo, error) {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	e.Renderer = renderer

	// Create handlers
	feedHandler := handlers.NewFeedHandler(config.FeedUsecase, config.Logger)
	requestHandler := handlers.NewRequestHandler(config.FeedUsecase, config.SubmissionUsecase, config.Logger)
	reportHandler := handlers.NewReportHandler(config.ReportUsecase, config.ReportWindowDays, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())

	if config.EnableRateLimit {
		rateLimiter := custommw.NewRateLimiter()
		e.Use(rateLimiter.RateLimit())
	}

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Server-rendered pages
	e.GET("/", feedHandler.Root)
	e.GET("/dashboard", feedHandler.Dashboard)
	e.GET("/reports", reportHandler.ReportsPage)
	e.GET("/requests/:id", requestHandler.DetailPage)

	// JSON API
	v1 := e.Group("/v1")
	v1.GET("/requests/:id", requestHandler.GetRequest)
	v1.POST("/requests", requestHandler.Submit)
	v1.GET("/reports/rollups", reportHandler.Rollups)

	// Health endpoints
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	health.GET("/ready", healthHandler.ReadinessCheck)
	health.GET("/live", healthHandler.LivenessCheck)

	return e, nil
}
