package ports

import (
	"context"
	"time"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts opaque token/id generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// UserRepository resolves accounts by normalized email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.User, bool, error)
}

// SessionRepository stores opaque bearer sessions.
type SessionRepository interface {
	PutSession(ctx context.Context, session entities.UserSession) error
	GetSession(ctx context.Context, token string) (entities.UserSession, bool, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) error
}

// AuditTrail records sign-in/sign-out events keyed by acting user.
type AuditTrail interface {
	Audit(ctx context.Context, action string, userID string, details map[string]any) error
}
