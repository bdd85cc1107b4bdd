package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	apperrors "relief-hub/app/utils/errors"
	"relief-hub/app/utils/logger"
	"relief-hub/app/utils/validator"
)

// RequestHandler serves single help requests and accepts new submissions
type RequestHandler struct {
	feed        port.FeedUsecase
	submissions port.SubmissionUsecase
	logger      *slog.Logger
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(feed port.FeedUsecase, submissions port.SubmissionUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		feed:        feed,
		submissions: submissions,
		logger:      logger,
	}
}

// GetRequest returns the public-safe projection of one request as JSON
// @Router /v1/requests/{id} [get]
func (h *RequestHandler) GetRequest(c echo.Context) error {
	publicID := c.Param("id")
	if !validator.IsValidUUID(publicID) {
		// A malformed id cannot exist, so no lookup is needed
		return errorJSON(c, apperrors.NewNotFound("help request"))
	}

	req, err := h.feed.GetRequest(c.Request().Context(), publicID)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			// Expected outcome, not logged as an error
			return errorJSON(c, apperrors.NewNotFound("help request"))
		}
		logger.LogError(requestLogger(c, h.logger), err, "request lookup failed", "public_id", publicID)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, req)
}

// DetailPage renders the HTML detail view for one request. The page polls
// its own JSON endpoint to refresh status changes.
func (h *RequestHandler) DetailPage(c echo.Context) error {
	publicID := c.Param("id")
	if !validator.IsValidUUID(publicID) {
		return c.Render(http.StatusNotFound, "error.html", ErrorView{
			Status:  http.StatusNotFound,
			Message: "This help request does not exist or is no longer public.",
		})
	}

	req, err := h.feed.GetRequest(c.Request().Context(), publicID)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return c.Render(http.StatusNotFound, "error.html", ErrorView{
				Status:  http.StatusNotFound,
				Message: "This help request does not exist or is no longer public.",
			})
		}
		logger.LogError(requestLogger(c, h.logger), err, "detail page failed", "public_id", publicID)
		return c.Render(http.StatusServiceUnavailable, "error.html", ErrorView{
			Status:  http.StatusServiceUnavailable,
			Message: "The request could not be loaded. Please retry shortly.",
		})
	}

	return c.Render(http.StatusOK, "request_detail.html", DetailView{Request: *req})
}

// Submit accepts a new help request (form-encoded or JSON) and returns the
// receipt with the one-time edit token
// @Router /v1/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	input := new(domain.SubmissionInput)
	if err := c.Bind(input); err != nil {
		return errorJSON(c, apperrors.New(apperrors.ErrCodeBadRequest, "malformed request body"))
	}

	receipt, err := h.submissions.Submit(c.Request().Context(), input)
	if err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Code:    string(apperrors.ErrCodeValidationFailed),
				Details: verr.Errors,
			})
		}
		logger.LogError(requestLogger(c, h.logger), err, "submission failed")
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, receipt)
}
