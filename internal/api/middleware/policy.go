package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// Outcome is what a matched policy rule demands of the request.
type Outcome int

const (
	// Public routes require no identity.
	Public Outcome = iota
	// Authenticated routes accept any valid identity.
	Authenticated
	// RoleRestricted routes require one of the rule's listed roles.
	RoleRestricted
)

// Rule binds a path pattern and method set to an access outcome. A pattern
// ending in "/**" matches the prefix itself and everything below it; any
// other pattern matches exactly. An empty method set matches all methods.
type Rule struct {
	Pattern string
	Methods []string
	Outcome Outcome
	Roles   []domain.Role
}

func (r Rule) matches(method, path string) bool {
	if len(r.Methods) > 0 {
		found := false
		for _, m := range r.Methods {
			if m == method {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

// PolicyTable is an ordered access rule table; the first matching rule
// wins. Requests matching no rule fall back to authenticated-only.
type PolicyTable []Rule

// Match returns the first rule matching the request, or the
// authenticated-only default.
func (t PolicyTable) Match(method, path string) Rule {
	for _, r := range t {
		if r.matches(method, path) {
			return r
		}
	}
	return Rule{Outcome: Authenticated}
}

// Policy enforces the table against the identity bound by Identity.
// Anonymous access to a restricted route fails with ErrUnauthenticated
// (401); a valid identity with the wrong role fails with ErrForbidden
// (403).
func Policy(table PolicyTable) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := table.Match(c.Request().Method, c.Request().URL.Path)
			if rule.Outcome == Public {
				return next(c)
			}

			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if rule.Outcome == Authenticated {
				return next(c)
			}

			for _, allowed := range rule.Roles {
				if role == allowed {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}
