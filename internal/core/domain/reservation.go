package domain

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Reservation books a papa for a single visit date. At most one CONFIRMED
// reservation may exist per (papa, visit date) pair; cancelled reservations
// do not block the slot.
type Reservation struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	PapaID       string            `json:"papa_id"`
	ReservedAt   time.Time         `json:"reserved_at"`
	VisitDate    time.Time         `json:"visit_date"`
	VisitAddress string            `json:"visit_address"`
	Status       ReservationStatus `json:"status"`
}

// VisitDay truncates t to midnight UTC. Visit dates are day-granular; all
// conflict comparisons go through this normalisation.
func VisitDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
