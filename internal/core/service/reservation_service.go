package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/api/metrics"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// ReservationService implements the booking workflow.
//
// The conflict check only considers CONFIRMED reservations, so cancelling
// a reservation frees its date. The repository's partial unique index is
// the backstop for two creates racing past the check.
type ReservationService struct {
	reservations ports.ReservationRepository
	users        ports.UserRepository
	papas        ports.PapaRepository
	notifier     ports.Notifier
	log          zerolog.Logger
	now          func() time.Time
}

func NewReservationService(
	reservations ports.ReservationRepository,
	users ports.UserRepository,
	papas ports.PapaRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		users:        users,
		papas:        papas,
		notifier:     notifier,
		log:          log,
		now:          time.Now,
	}
}

func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	papa, err := s.papas.FindByID(ctx, in.PapaID)
	if err != nil {
		return nil, err
	}

	today := domain.VisitDay(s.now())
	visit := domain.VisitDay(in.VisitDate)
	if !visit.After(today) {
		return nil, domain.ErrPastVisitDate
	}

	taken, err := s.reservations.ConfirmedExists(ctx, papa.ID, visit)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.ReservationConflictsTotal.Inc()
		return nil, domain.ErrDateTaken
	}

	res := &domain.Reservation{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		PapaID:       papa.ID,
		ReservedAt:   s.now().UTC(),
		VisitDate:    visit,
		VisitAddress: in.VisitAddress,
		Status:       domain.ReservationConfirmed,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		// The unique index catches creates that raced past the check.
		if errors.Is(err, domain.ErrDateTaken) {
			metrics.ReservationConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.log.Info().
		Str("reservation_id", res.ID).
		Str("papa_id", papa.ID).
		Str("user_id", user.ID).
		Time("visit_date", visit).
		Msg("reservation created")

	if err := s.notifier.SendReservationConfirmation(ctx, user.Email, user.Username, papa.FirstName, visit); err != nil {
		s.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("failed to send reservation confirmation")
	}

	return res, nil
}

func (s *ReservationService) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	all, err := s.reservations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, domain.ErrNoReservations
	}
	return all, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.FindByID(ctx, id)
}

// Cancel flips the reservation to CANCELLED. The slot becomes bookable
// again because the conflict check ignores cancelled rows.
func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res.Status = domain.ReservationCancelled
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info().Str("reservation_id", res.ID).Msg("reservation cancelled")
	return res, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if _, err := s.reservations.FindByID(ctx, id); err != nil {
		return err
	}
	return s.reservations.Delete(ctx, id)
}

// DueTomorrow returns the reservations whose visit is tomorrow. The
// reminder job uses it to send visit reminders.
func (s *ReservationService) DueTomorrow(ctx context.Context) ([]domain.Reservation, error) {
	tomorrow := domain.VisitDay(s.now()).AddDate(0, 0, 1)
	return s.reservations.FindByVisitDate(ctx, tomorrow)
}
