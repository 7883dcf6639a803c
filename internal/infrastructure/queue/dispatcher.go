package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentapapa/booking-api/internal/api/metrics"
	"github.com/rentapapa/booking-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

type notificationKind string

const (
	kindWelcome      notificationKind = "welcome"
	kindDeactivation notificationKind = "deactivation"
	kindConfirmation notificationKind = "confirmation"
	kindReminder     notificationKind = "reminder"
)

type notification struct {
	kind      notificationKind
	email     string
	username  string
	papaName  string
	visitDate time.Time
}

// Dispatcher is an asynchronous ports.Notifier. Notifications are routed
// to a fixed set of workers using consistent hashing on the recipient
// address, so mail for the same recipient is delivered in order while
// callers never block on SMTP round trips.
type Dispatcher struct {
	workers  []chan notification
	delegate ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers
// wrapping the given delegate. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, delegate ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan notification, numWorkers),
		delegate: delegate,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

func (d *Dispatcher) SendWelcome(ctx context.Context, email, username string) error {
	d.enqueue(notification{kind: kindWelcome, email: email, username: username})
	return nil
}

func (d *Dispatcher) SendDeactivationNotice(ctx context.Context, email, username string) error {
	d.enqueue(notification{kind: kindDeactivation, email: email, username: username})
	return nil
}

func (d *Dispatcher) SendReservationConfirmation(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	d.enqueue(notification{kind: kindConfirmation, email: email, username: username, papaName: papaName, visitDate: visitDate})
	return nil
}

func (d *Dispatcher) SendReservationReminder(ctx context.Context, email, username, papaName string, visitDate time.Time) error {
	d.enqueue(notification{kind: kindReminder, email: email, username: username, papaName: papaName, visitDate: visitDate})
	return nil
}

// enqueue sends the notification to the worker responsible for its
// recipient. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) enqueue(n notification) {
	i := d.shardIndex(n.email)
	d.workers[i] <- n
	metrics.NotifierQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan notification) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotifierQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			result := "sent"
			if err := d.deliver(ctx, n); err != nil {
				result = "failed"
				d.log.Error().Err(err).
					Str("kind", string(n.kind)).
					Str("to", n.email).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
			metrics.NotificationsTotal.WithLabelValues(string(n.kind), result).Inc()
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n notification) error {
	switch n.kind {
	case kindWelcome:
		return d.delegate.SendWelcome(ctx, n.email, n.username)
	case kindDeactivation:
		return d.delegate.SendDeactivationNotice(ctx, n.email, n.username)
	case kindConfirmation:
		return d.delegate.SendReservationConfirmation(ctx, n.email, n.username, n.papaName, n.visitDate)
	case kindReminder:
		return d.delegate.SendReservationReminder(ctx, n.email, n.username, n.papaName, n.visitDate)
	}
	return nil
}
