package ports

import (
	"context"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// AuthService authenticates accounts against the credential stores and
// issues tokens on success.
type AuthService interface {
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)
}
