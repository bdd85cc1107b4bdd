package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"relief-hub/app/config"
	"relief-hub/app/driver/postgres"
	"relief-hub/app/port"
	"relief-hub/app/rest"
	"relief-hub/app/usecase"
	"relief-hub/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Usecases
	FeedUsecase       port.FeedUsecase
	ReportUsecase     port.ReportUsecase
	SubmissionUsecase port.SubmissionUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	requestRepository := postgres.NewRequestRepository(container.DB.Pool(), logger)
	reportRepository := postgres.NewReportRepository(container.DB.Pool(), logger)
	submissionRepository := postgres.NewSubmissionRepository(container.DB.Pool(), logger)

	// Initialize usecases
	container.FeedUsecase = usecase.NewFeedUsecase(requestRepository, logger)
	container.ReportUsecase = usecase.NewReportUsecase(reportRepository, logger)
	container.SubmissionUsecase = usecase.NewSubmissionUsecase(submissionRepository, validator.New(), logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() (*echo.Echo, error) {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		FeedUsecase:       c.FeedUsecase,
		ReportUsecase:     c.ReportUsecase,
		SubmissionUsecase: c.SubmissionUsecase,
		HealthChecker:     c.DB,
		ReportWindowDays:  c.Config.ReportWindowDays,
		EnableRateLimit:   c.Config.EnableRateLimit,
		EnableDebug:       c.Config.LogLevel == "debug",
	}

	router, err := rest.NewRouter(routerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	c.Logger.Info("router created")
	return router, nil
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
