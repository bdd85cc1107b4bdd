package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	"relief-hub/app/utils/logger"
)

// maxReportWindowDays caps the rollup window a caller can request
const maxReportWindowDays = 366

// ReportHandler serves the rollup aggregates
type ReportHandler struct {
	reports    port.ReportUsecase
	windowDays int
	logger     *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports port.ReportUsecase, windowDays int, logger *slog.Logger) *ReportHandler {
	if windowDays < 1 {
		windowDays = domain.DefaultReportWindowDays
	}
	return &ReportHandler{
		reports:    reports,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Rollups returns the reports aggregates as JSON
// @Router /v1/reports/rollups [get]
func (h *ReportHandler) Rollups(c echo.Context) error {
	rollups, err := h.reports.GetRollups(c.Request().Context(), h.parseWindow(c))
	if err != nil {
		logger.LogError(requestLogger(c, h.logger), err, "rollups failed")
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, rollups)
}

// ReportsPage renders the HTML reports view
func (h *ReportHandler) ReportsPage(c echo.Context) error {
	windowDays := h.parseWindow(c)

	rollups, err := h.reports.GetRollups(c.Request().Context(), windowDays)
	if err != nil {
		logger.LogError(requestLogger(c, h.logger), err, "reports page failed")
		return c.Render(http.StatusServiceUnavailable, "error.html", ErrorView{
			Status:  http.StatusServiceUnavailable,
			Message: "Reports are temporarily unavailable. Please retry shortly.",
		})
	}

	return c.Render(http.StatusOK, "reports.html", ReportsView{
		Rollups:    *rollups,
		WindowDays: windowDays,
		Statuses:   domain.Statuses,
		Urgencies:  domain.Urgencies,
	})
}

// parseWindow reads the days parameter, falling back to the configured
// default and capping at one year
func (h *ReportHandler) parseWindow(c echo.Context) int {
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil || days < 1 {
		return h.windowDays
	}
	if days > maxReportWindowDays {
		return maxReportWindowDays
	}
	return days
}
