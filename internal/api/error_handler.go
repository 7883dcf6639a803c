package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/api/handler"
	"github.com/rentapapa/booking-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their fixed HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the canonical envelope: {"status":"ERROR","message":...,"data":null}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = handler.RespondError(c, code, msg)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrPapaNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrNoUsers),
		errors.Is(err, domain.ErrNoPapas),
		errors.Is(err, domain.ErrNoReservations):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAdminExists),
		errors.Is(err, domain.ErrPapaExists),
		errors.Is(err, domain.ErrDateTaken),
		errors.Is(err, domain.ErrAlreadyActive):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrPastVisitDate):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
