package entities

import "time"

// Role values carried on sessions; they match the authorization
// context's coarse privilege levels.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account row as the authentication service sees it. Email
// is already normalized when the row is written.
type User struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
