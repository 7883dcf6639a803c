package domain

import "time"

// Admin is a back-office account. Admins carry no activity tracking; they
// are created and removed by other admins.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
