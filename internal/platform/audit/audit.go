package audit

import (
	"context"
	"errors"
	"time"
)

// Level grades an entry's severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ErrUserIDRequired rejects audit entries with no attributed user.
var ErrUserIDRequired = errors.New("audit entries require a user id")

// Entry is one durable audit trail record.
type Entry struct {
	EntryID   string
	Level     Level
	Action    string
	Message   string
	UserID    string
	Details   map[string]any
	CreatedAt time.Time
}

// Store persists audit entries.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}
