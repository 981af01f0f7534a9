package application

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// AuditEvent records a ledger mutation and never fails the caller.
func AuditEvent(
	ctx context.Context,
	trail ports.AuditTrail,
	logger *slog.Logger,
	action string,
	userID string,
	details map[string]any,
) {
	if trail == nil {
		return
	}
	if err := trail.Audit(ctx, action, userID, details); err != nil {
		ResolveLogger(logger).Error("audit write failed",
			"event", "lending_audit_write_failed",
			"module", "finance-core/lending-ledger-service",
			"layer", "application",
			"action", action,
			"error", err.Error(),
		)
	}
}
