package domain

// Role is the closed set of account roles recognised by the API.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a raw claim value into a Role. Unknown values are
// rejected so a tampered token can never smuggle in a new role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }
