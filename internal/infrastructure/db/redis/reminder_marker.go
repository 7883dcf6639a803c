package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentapapa/booking-api/internal/core/domain"
)

// Markers outlive the visit day by a margin so a clock-skewed late run
// still sees them, then expire on their own.
const reminderTTL = 48 * time.Hour

// ReminderMarker remembers which visit reminders have already been sent.
// Key format: reminder:<reservation_id>:<visit_day_unix>
type ReminderMarker struct {
	client *redis.Client
}

// NewReminderMarker creates a ReminderMarker wrapping the given Redis client.
func NewReminderMarker(client *redis.Client) *ReminderMarker {
	return &ReminderMarker{client: client}
}

// IsSent reports whether a reminder for this reservation and day went out.
func (m *ReminderMarker) IsSent(ctx context.Context, reservationID string, day time.Time) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(reservationID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the reminder has been sent (expires after reminderTTL).
func (m *ReminderMarker) Mark(ctx context.Context, reservationID string, day time.Time) error {
	return m.client.Set(ctx, m.key(reservationID, day), "1", reminderTTL).Err()
}

func (m *ReminderMarker) key(reservationID string, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%d", reservationID, domain.VisitDay(day).Unix())
}
