package handlers

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "relief-hub/app/utils/errors"
	"relief-hub/app/utils/logger"
)

// errorJSON writes the JSON error envelope for err, mapping AppErrors to
// their status and code. Anything else becomes a plain 500 so internal
// detail never leaks to clients.
func errorJSON(c echo.Context, err error) error {
	resp := ErrorResponse{
		Error: "internal server error",
		Code:  string(apperrors.GetErrorCode(err)),
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		resp.Error = appErr.Message
		if appErr.Details != "" {
			resp.Details = appErr.Details
		}
	}
	return c.JSON(apperrors.GetHTTPStatusCode(err), resp)
}

// requestLogger scopes a handler logger to the current request
func requestLogger(c echo.Context, base *slog.Logger) *slog.Logger {
	req := c.Request()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	return logger.WithRequest(base, requestID, req.Method, req.URL.Path)
}
