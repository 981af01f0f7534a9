package entities

import "time"

// UserSession is the immutable identity snapshot handed to consumers.
// Every consumer treats it read-only; a sign-in constructs a new one.
type UserSession struct {
	Token     string
	UserID    string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is past its expiry at the given
// instant. A zero expiry means the session never expires.
func (s UserSession) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
