// Package metrics defines all custom Prometheus metrics for the booking
// API. It is the single source of truth for metric names, labels, and help
// strings; the promauto constructors register everything with the default
// registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentapapa"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "user"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Reservation metrics ───────────────────────────────────────────────────────

// ReservationsCreatedTotal counts successfully created reservations.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created.",
	},
)

// ReservationConflictsTotal counts create attempts rejected because the
// papa was already booked for the requested date.
var ReservationConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_conflicts_total",
		Help:      "Total number of reservation attempts rejected as double bookings.",
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersDeactivatedTotal counts users flipped inactive by the sweep.
var UsersDeactivatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deactivated_total",
		Help:      "Total number of users marked inactive by the inactivity sweep.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notification deliveries.
// Labels:
//   - kind: "welcome", "deactivation", "confirmation", "reminder"
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification deliveries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// NotifierQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifierQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifier_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// RemindersSentTotal counts visit reminders delivered by the reminder job.
var RemindersSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Total number of visit reminders sent.",
	},
)
