package ports

import (
	"context"
	"time"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// AuditTrail records security-relevant decisions keyed by acting user.
type AuditTrail interface {
	Audit(ctx context.Context, action string, userID string, details map[string]any) error
}
