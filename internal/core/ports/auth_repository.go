package ports

import (
	"context"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// UserRepository is the persistence interface for customer accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository is the persistence interface for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
}
