package audit

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DefaultRetentionWindow keeps one week of audit history.
const DefaultRetentionWindow = 7 * 24 * time.Hour

// Retention purges audit entries older than the window.
type Retention struct {
	Store  Store
	Clock  Clock
	Window time.Duration
	Logger *slog.Logger
}

// RunOnce performs a single purge pass.
func (r Retention) RunOnce(ctx context.Context) error {
	window := r.Window
	if window <= 0 {
		window = DefaultRetentionWindow
	}
	cutoff := r.now().Add(-window)

	removed, err := r.Store.PurgeBefore(ctx, cutoff)
	if err != nil {
		r.logger().Error("audit retention purge failed",
			"event", "audit_retention_failed",
			"module", "platform/audit",
			"error", err.Error(),
		)
		return err
	}
	if removed > 0 {
		r.logger().Info("audit entries purged",
			"event", "audit_retention_purged",
			"module", "platform/audit",
			"removed", removed,
			"cutoff", cutoff,
		)
	}
	return nil
}

func (r Retention) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r Retention) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
