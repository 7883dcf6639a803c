package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/ports"
)

// Context keys populated by Identity and read by Policy and the handlers.
const (
	CtxSubject = "subject"
	CtxRole    = "role"
)

// Identity extracts and validates a bearer token, binding the subject and
// role to the request context on success.
//
// It is a classifier, not a gatekeeper: a missing, malformed, or invalid
// token leaves the context empty and the request proceeds anonymous.
// Rejection is the Policy middleware's job, which lets public and
// protected routes share one pipeline.
func Identity(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return next(c)
			}

			c.Set(CtxSubject, claims.Subject)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}
