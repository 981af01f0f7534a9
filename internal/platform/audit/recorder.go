package audit

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Recorder is the process-wide audit sink. Leveled methods go to the
// structured logger only; Audit additionally appends a durable entry.
type Recorder struct {
	Store  Store
	Clock  Clock
	Logger *slog.Logger
}

func (r Recorder) Debug(message string, args ...any) {
	r.logger().Debug(message, args...)
}

func (r Recorder) Info(message string, args ...any) {
	r.logger().Info(message, args...)
}

func (r Recorder) Warn(message string, args ...any) {
	r.logger().Warn(message, args...)
}

func (r Recorder) Error(message string, args ...any) {
	r.logger().Error(message, args...)
}

// Audit appends a durable entry attributed to userID. A broken store
// is logged and swallowed so business flows never fail on auditing.
func (r Recorder) Audit(ctx context.Context, action string, userID string, details map[string]any) error {
	if userID == "" {
		return ErrUserIDRequired
	}
	if r.Store == nil {
		return nil
	}

	entry := Entry{
		EntryID:   uuid.NewString(),
		Level:     LevelInfo,
		Action:    action,
		Message:   action,
		UserID:    userID,
		Details:   details,
		CreatedAt: r.now(),
	}
	if err := r.Store.Append(ctx, entry); err != nil {
		r.logger().Error("audit store append failed",
			"event", "audit_sink_unavailable",
			"module", "platform/audit",
			"action", action,
			"user_id", userID,
			"error", err.Error(),
		)
	}
	return nil
}

func (r Recorder) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r Recorder) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
