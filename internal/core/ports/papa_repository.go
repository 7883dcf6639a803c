package ports

import (
	"context"
	"time"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// PapaRepository is the persistence interface for the papa catalogue.
type PapaRepository interface {
	Create(ctx context.Context, papa *domain.Papa) error
	FindByID(ctx context.Context, id string) (*domain.Papa, error)
	FindAll(ctx context.Context) ([]domain.Papa, error)
	Update(ctx context.Context, papa *domain.Papa) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository is the persistence interface for reservations.
//
// ConfirmedExists must filter by CONFIRMED status so a cancelled
// reservation never blocks its date, and the backing store is expected to
// enforce the same rule with a (papa_id, visit_date) unique constraint
// scoped to CONFIRMED rows as a guard against concurrent creates.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByVisitDate(ctx context.Context, day time.Time) ([]domain.Reservation, error)
	ConfirmedExists(ctx context.Context, papaID string, day time.Time) (bool, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id string) error
}
