package domain

import "errors"

// Sentinel errors raised by the core services. The API layer maps each one
// to a fixed HTTP status code in the central error handler.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrNoUsers      = errors.New("no users registered")
	ErrAlreadyActive = errors.New("user is already active")

	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists")

	ErrPapaNotFound = errors.New("papa not found")
	ErrPapaExists   = errors.New("papa already exists")
	ErrNoPapas      = errors.New("no papas registered")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoReservations      = errors.New("no reservations registered")
	ErrDateTaken           = errors.New("papa already reserved for that date")
	ErrPastVisitDate       = errors.New("visit date must be after today")
)
