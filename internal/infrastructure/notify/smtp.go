package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/rentapapa/booking-api/internal/infrastructure/config"
)

// SMTPNotifier delivers account and reservation mail over plain SMTP.
type SMTPNotifier struct {
	addr string
	from string
	auth smtp.Auth
	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier builds a notifier from SMTP settings. Auth is only used
// when a username is configured.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPNotifier{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
		auth: auth,
		send: smtp.SendMail,
	}
}

func (n *SMTPNotifier) SendWelcome(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hola %s,\n\nTu cuenta en Rent a Papá está lista. ¡Bienvenido!\n", username)
	return n.deliver(ctx, email, "Bienvenido a Rent a Papá", body)
}

func (n *SMTPNotifier) SendDeactivationNotice(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hola %s,\n\nTu cuenta fue desactivada por inactividad. Puedes reactivarla cuando quieras.\n", username)
	return n.deliver(ctx, email, "Tu cuenta fue desactivada", body)
}

func (n *SMTPNotifier) SendReservationConfirmation(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	body := fmt.Sprintf("Hola %s,\n\nTu reserva con %s para el %s está confirmada.\n",
		username, papaName, visitDate.Format("2006-01-02"))
	return n.deliver(ctx, email, "Reserva confirmada", body)
}

func (n *SMTPNotifier) SendReservationReminder(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	body := fmt.Sprintf("Hola %s,\n\nRecuerda que mañana %s te visita (%s).\n",
		username, papaName, visitDate.Format("2006-01-02"))
	return n.deliver(ctx, email, "Tu visita es mañana", body)
}

func (n *SMTPNotifier) deliver(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	if err := n.send(n.addr, n.auth, n.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
