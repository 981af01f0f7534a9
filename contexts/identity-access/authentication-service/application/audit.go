package application

import (
	"context"
	"log/slog"

	"tokentab/contexts/identity-access/authentication-service/ports"
)

// AuditEvent writes a security-relevant entry and never fails the
// caller: a broken audit sink is reported on the process logger only.
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
			"event", "auth_audit_write_failed",
			"module", "identity-access/authentication-service",
			"layer", "application",
			"action", action,
			"error", err.Error(),
		)
	}
}
