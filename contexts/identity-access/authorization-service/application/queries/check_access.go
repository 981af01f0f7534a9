package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "tokentab/contexts/identity-access/authorization-service/application"
	"tokentab/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "tokentab/contexts/identity-access/authorization-service/domain/errors"
	"tokentab/contexts/identity-access/authorization-service/domain/services"
	"tokentab/contexts/identity-access/authorization-service/ports"
)

// AccessQuery is the request model for one rule evaluation.
type AccessQuery struct {
	ActorID string
	Role    entities.Role
	OwnerID string
	Check   entities.CheckKind
}

// CheckAccessUseCase evaluates access rules against a resolved identity
// snapshot and audits every denial. It holds no state of its own.
type CheckAccessUseCase struct {
	Clock  ports.Clock
	Audit  ports.AuditTrail
	Logger *slog.Logger
}

// Evaluate runs the rule engine and never fails; callers that need a
// go/no-go error use the Require* guards instead.
func (u CheckAccessUseCase) Evaluate(ctx context.Context, query AccessQuery) entities.AccessDecision {
	effect, reason := services.Evaluate(entities.AccessRequest{
		ActorID: query.ActorID,
		Role:    query.Role,
		OwnerID: query.OwnerID,
		Check:   query.Check,
	})
	decision := entities.AccessDecision{
		ActorID:   query.ActorID,
		OwnerID:   query.OwnerID,
		Check:     query.Check,
		Effect:    effect,
		Reason:    reason,
		CheckedAt: u.now(),
	}

	logger := application.ResolveLogger(u.Logger)
	if decision.Allowed() {
		logger.Debug("access allowed",
			"event", "authz_access_allowed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"actor_user_id", decision.ActorID,
			"owner_user_id", decision.OwnerID,
			"check", string(decision.Check),
			"reason", decision.Reason,
		)
		return decision
	}

	logger.Warn("access denied",
		"event", "authz_access_denied",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"actor_user_id", decision.ActorID,
		"owner_user_id", decision.OwnerID,
		"check", string(decision.Check),
		"effect", string(decision.Effect),
		"reason", decision.Reason,
	)
	u.recordDenial(ctx, decision)
	return decision
}

// RequireOwner fails with ErrForbidden unless the actor owns the
// resource; admins pass via the override rule.
func (u CheckAccessUseCase) RequireOwner(ctx context.Context, actorUserID string, role string, ownerUserID string) error {
	return u.guard(ctx, AccessQuery{
		ActorID: actorUserID,
		Role:    entities.Role(role),
		OwnerID: ownerUserID,
		Check:   entities.CheckOwnership,
	})
}

// RequireAdmin fails with ErrForbidden for every non-admin actor,
// ownership notwithstanding.
func (u CheckAccessUseCase) RequireAdmin(ctx context.Context, actorUserID string, role string) error {
	return u.guard(ctx, AccessQuery{
		ActorID: actorUserID,
		Role:    entities.Role(role),
		Check:   entities.CheckAdminOnly,
	})
}

// RequireAccess passes iff ownership holds or the actor is admin.
func (u CheckAccessUseCase) RequireAccess(ctx context.Context, actorUserID string, role string, ownerUserID string) error {
	return u.guard(ctx, AccessQuery{
		ActorID: actorUserID,
		Role:    entities.Role(role),
		OwnerID: ownerUserID,
		Check:   entities.CheckResourceAccess,
	})
}

// IsAdmin is the non-throwing variant used for conditional business
// logic; it never fails.
func (u CheckAccessUseCase) IsAdmin(role string) bool {
	return entities.Role(role).IsAdmin()
}

// OwnsResource reports plain ownership without the admin override; it
// never fails.
func (u CheckAccessUseCase) OwnsResource(actorUserID string, ownerUserID string) bool {
	return strings.TrimSpace(actorUserID) != "" && actorUserID == ownerUserID
}

func (u CheckAccessUseCase) guard(ctx context.Context, query AccessQuery) error {
	decision := u.Evaluate(ctx, query)
	switch decision.Effect {
	case entities.EffectAllowed:
		return nil
	case entities.EffectDeniedUnauthorized:
		return domainerrors.ErrUnauthorized
	default:
		return domainerrors.ErrForbidden
	}
}

func (u CheckAccessUseCase) recordDenial(ctx context.Context, decision entities.AccessDecision) {
	if u.Audit == nil {
		return
	}

	action := "access_denied_forbidden"
	if decision.Effect == entities.EffectDeniedUnauthorized {
		action = "access_denied_unauthorized"
	}
	// Audit entries must stay attributable even when the denial is the
	// absence of an identity.
	userID := strings.TrimSpace(decision.ActorID)
	if userID == "" {
		userID = "anonymous"
	}

	err := u.Audit.Audit(ctx, action, userID, map[string]any{
		"owner_user_id": decision.OwnerID,
		"check":         string(decision.Check),
		"reason":        decision.Reason,
	})
	if err != nil {
		application.ResolveLogger(u.Logger).Error("audit write failed",
			"event", "authz_audit_write_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"action", action,
			"error", err.Error(),
		)
	}
}

func (u CheckAccessUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
