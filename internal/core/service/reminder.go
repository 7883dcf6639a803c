package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/api/metrics"
	"github.com/rentapapa/booking-api/internal/core/domain"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

// ReminderMarker abstracts the store (Redis) that remembers which
// reminders have already gone out.
type ReminderMarker interface {
	IsSent(ctx context.Context, reservationID string, day time.Time) (bool, error)
	Mark(ctx context.Context, reservationID string, day time.Time) error
}

// Reminder periodically notifies users whose visit is tomorrow. Sends are
// deduplicated through the marker so restarting the process never repeats
// a reminder.
type Reminder struct {
	reservations ports.ReservationService
	users        ports.UserRepository
	papas        ports.PapaRepository
	marker       ReminderMarker
	notifier     ports.Notifier
	interval     time.Duration
	log          zerolog.Logger
}

func NewReminder(
	reservations ports.ReservationService,
	users ports.UserRepository,
	papas ports.PapaRepository,
	marker ReminderMarker,
	notifier ports.Notifier,
	interval time.Duration,
	log zerolog.Logger,
) *Reminder {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Reminder{
		reservations: reservations,
		users:        users,
		papas:        papas,
		marker:       marker,
		notifier:     notifier,
		interval:     interval,
		log:          log,
	}
}

// Start runs the reminder loop until ctx is cancelled.
func (r *Reminder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				r.log.Error().Err(err).Msg("reminder run failed")
			}
		}
	}
}

// RunOnce sends reminders for every CONFIRMED reservation due tomorrow
// that has not been reminded yet. Individual send failures are logged and
// skipped; the reservation stays unmarked so the next run retries it.
func (r *Reminder) RunOnce(ctx context.Context) error {
	due, err := r.reservations.DueTomorrow(ctx)
	if err != nil {
		return err
	}

	for _, res := range due {
		if res.Status != domain.ReservationConfirmed {
			continue
		}

		sent, err := r.marker.IsSent(ctx, res.ID, res.VisitDate)
		if err != nil {
			r.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("reminder marker check failed, sending anyway")
		} else if sent {
			continue
		}

		user, err := r.users.FindByID(ctx, res.UserID)
		if err != nil {
			r.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("reminder skipped: user gone")
			continue
		}
		papa, err := r.papas.FindByID(ctx, res.PapaID)
		if err != nil {
			r.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("reminder skipped: papa gone")
			continue
		}

		if err := r.notifier.SendReservationReminder(ctx, user.Email, user.Username, papa.FirstName, res.VisitDate); err != nil {
			r.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("failed to send reminder")
			continue
		}

		metrics.RemindersSentTotal.Inc()
		if err := r.marker.Mark(ctx, res.ID, res.VisitDate); err != nil {
			r.log.Warn().Err(err).Str("reservation_id", res.ID).Msg("failed to mark reminder as sent")
		}
	}

	return nil
}
