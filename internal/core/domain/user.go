package domain

import "time"

// InactivityThreshold is how long a user may go without activity before a
// read marks the account inactive.
const InactivityThreshold = 365 * 24 * time.Hour

// User is a customer account. Passwords are stored bcrypt-hashed and never
// serialised back to clients.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	LastName     string     `json:"last_name,omitempty"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Address      string     `json:"address,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	Active       bool       `json:"active"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// InactiveSince reports whether the user has been idle long enough, as of
// now, to be swept into the inactive state. A user with no recorded
// activity at all counts as idle.
func (u *User) InactiveSince(now time.Time) bool {
	if u.LastActivity == nil {
		return true
	}
	return now.Sub(*u.LastActivity) >= InactivityThreshold
}
