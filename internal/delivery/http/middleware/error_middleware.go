package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "travelapp/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the central error responder. Every failure a handler
// returns funnels through here and is mapped onto the uniform
// {"errors":[{"message":...}]} body.
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

	// Taxonomy errors carry their own status code and message list.
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		_ = c.JSON(domainErr.HTTPCode(), domainerrors.Envelope{Errors: domainErr.Serialize()})

		return
	}

	// Echo's own errors (unknown route, method not allowed) keep their code.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = c.JSON(httpErr.Code, domainerrors.Envelope{Errors: []domainerrors.Message{{Message: message}}})

		return
	}

	// Anything unclassified is logged server-side and reported generically
	// so internals never leak to the client.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusBadRequest, domainerrors.Envelope{
		Errors: []domainerrors.Message{{Message: "Something went wrong"}},
	})
}
