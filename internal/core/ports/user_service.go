package ports

import (
	"context"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted at registration time. The
// password arrives in clear and is hashed before it touches the store.
type CreateUserInput struct {
	Username  string
	LastName  string
	Email     string
	Password  string
	Address   string
	AvatarURL string
}

// UpdateUserInput is a partial update: nil means "leave the stored value
// alone". Non-nil empty strings are ignored as well, matching the merge
// semantics of the account store.
type UpdateUserInput struct {
	Password  *string
	Email     *string
	Address   *string
	AvatarURL *string
}

// UserService manages customer accounts. Read operations are not pure:
// listing or fetching a user runs the inactivity sweep, which may flip the
// account inactive and emit a deactivation notice.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Active(ctx context.Context) ([]domain.User, error)
	Inactive(ctx context.Context) ([]domain.User, error)
	Reactivate(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AdminService manages back-office accounts.
type AdminService interface {
	Create(ctx context.Context, username, lastName, email, password string) (*domain.Admin, error)
	GetAll(ctx context.Context) ([]domain.Admin, error)
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
}
