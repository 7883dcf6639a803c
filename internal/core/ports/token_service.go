package ports

import "github.com/rentapapa/booking-api/internal/core/domain"

// TokenClaims is the identity a validated token carries.
type TokenClaims struct {
	Subject string
	Role    domain.Role
}

// TokenService issues and validates signed identity tokens. Validation
// fails closed: every malformed, tampered, or expired token is rejected
// with the same error.
type TokenService interface {
	Issue(subject string, role domain.Role) (string, error)
	Validate(token string) (TokenClaims, error)
}
