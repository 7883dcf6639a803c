package ports

import (
	"context"
	"time"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// CreateReservationInput books a papa for a visit.
type CreateReservationInput struct {
	UserID       string
	PapaID       string
	VisitDate    time.Time
	VisitAddress string
}

// ReservationService implements the booking workflow: date validation,
// conflict checking against CONFIRMED reservations, and best-effort
// confirmation notices.
type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	DueTomorrow(ctx context.Context) ([]domain.Reservation, error)
}
