package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to the log instead of sending mail.
// It is the fallback when no SMTP host is configured, which keeps local
// development working without a mail server.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendWelcome(ctx context.Context, email, username string) error {
	n.log.Info().Str("to", email).Str("username", username).Msg("welcome email")
	return nil
}

func (n *LogNotifier) SendDeactivationNotice(ctx context.Context, email, username string) error {
	n.log.Info().Str("to", email).Str("username", username).Msg("deactivation notice")
	return nil
}

func (n *LogNotifier) SendReservationConfirmation(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	n.log.Info().
		Str("to", email).
		Str("papa", papaName).
		Time("visit_date", visitDate).
		Msg("reservation confirmation")
	return nil
}

func (n *LogNotifier) SendReservationReminder(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	n.log.Info().
		Str("to", email).
		Str("papa", papaName).
		Time("visit_date", visitDate).
		Msg("reservation reminder")
	return nil
}
