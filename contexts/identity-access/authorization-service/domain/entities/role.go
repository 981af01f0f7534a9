package entities

// Role is the coarse privilege level carried by a session snapshot.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role carries the admin override.
func (r Role) IsAdmin() bool { return r == RoleAdmin }
