package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "bizconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		resp := domainerrors.APIResponse{
			Success: false,
			Message: appErr.Message(),
		}
		if details := appErr.Details(); details != "" {
			resp.Details = details
		}
		c.JSON(appErr.HTTPCode(), resp)

		return
	}

	// Check if it's Echo's HTTPError (404 on unknown routes, body limit, etc.)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		c.JSON(httpErr.Code, domainerrors.APIResponse{
			Success: false,
			Message: message,
		})

		return
	}

	// Default to internal error: log the cause, return a generic message.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	c.JSON(http.StatusInternalServerError, domainerrors.APIResponse{
		Success: false,
		Message: "Terjadi kesalahan pada server",
	})
}
