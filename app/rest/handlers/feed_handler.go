package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	apperrors "relief-hub/app/utils/errors"
	"relief-hub/app/utils/logger"
)

// FeedHandler serves the public dashboard feed
type FeedHandler struct {
	feed   port.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feed port.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		logger: logger,
	}
}

// Root redirects the bare host to the dashboard
func (h *FeedHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Dashboard serves the feed in both modes: a full HTML page, or with
// partial=1 the JSON payload the page polls for. Both modes run the exact
// same query, so their KPI and pagination numbers always agree.
func (h *FeedHandler) Dashboard(c echo.Context) error {
	criteria := parseFilterCriteria(c)
	partial := c.QueryParam("partial") == "1"

	result, err := h.feed.GetFeed(c.Request().Context(), criteria)
	if err != nil {
		logger.LogError(requestLogger(c, h.logger), err, "dashboard feed failed")
		if partial {
			return errorJSON(c, err)
		}
		status := apperrors.GetHTTPStatusCode(err)
		return c.Render(status, "error.html", ErrorView{
			Status:  status,
			Message: "The feed is temporarily unavailable. Please retry shortly.",
		})
	}

	if partial {
		return c.JSON(http.StatusOK, FeedPartialResponse{
			KPIs:       result.KPIs,
			Rows:       NewFeedRows(result.Rows),
			Pagination: result.Pagination,
		})
	}

	return c.Render(http.StatusOK, "dashboard.html", DashboardView{
		Criteria:   criteria,
		BBox:       c.QueryParam("bbox"),
		KPIs:       result.KPIs,
		Rows:       result.Rows,
		Pagination: result.Pagination,
		Urgencies:  domain.Urgencies,
	})
}

// parseFilterCriteria builds feed criteria from query parameters. Unknown
// urgency values and malformed bbox strings impose no filter instead of
// failing the request.
func parseFilterCriteria(c echo.Context) domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		FreeText: c.QueryParam("q"),
	}

	if urgency := c.QueryParam("urgency"); domain.IsValidUrgency(urgency) {
		criteria.Urgency = urgency
	}

	if box, ok := domain.ParseBoundingBox(c.QueryParam("bbox")); ok {
		criteria.Box = &box
	}

	criteria.Page, _ = strconv.Atoi(c.QueryParam("page"))
	criteria.PageSize, _ = strconv.Atoi(c.QueryParam("per_page"))

	return criteria.Normalize()
}
