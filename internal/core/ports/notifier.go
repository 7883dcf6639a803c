package ports

import (
	"context"
	"time"
)

// Notifier sends account and reservation emails. Every call is
// fire-and-forget from the caller's point of view: delivery failures are
// logged and counted, never propagated into a business outcome.
type Notifier interface {
	SendWelcome(ctx context.Context, email, username string) error
	SendDeactivationNotice(ctx context.Context, email, username string) error
	SendReservationConfirmation(ctx context.Context, email, username, papaName string, visitDate time.Time) error
	SendReservationReminder(ctx context.Context, email, username, papaName string, visitDate time.Time) error
}
