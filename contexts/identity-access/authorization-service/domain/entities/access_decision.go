package entities

import "time"

// CheckKind tags which rule an access request asks for.
type CheckKind string

const (
	// CheckOwnership passes iff the actor owns the resource (admins override).
	CheckOwnership CheckKind = "ownership"
	// CheckAdminOnly passes only for admins, regardless of ownership.
	CheckAdminOnly CheckKind = "admin_only"
	// CheckResourceAccess passes iff ownership holds or the actor is admin.
	CheckResourceAccess CheckKind = "resource_access"
)

// Effect is the tagged outcome of evaluating an access request.
type Effect string

const (
	EffectAllowed            Effect = "allowed"
	EffectDeniedUnauthorized Effect = "denied_unauthorized"
	EffectDeniedForbidden    Effect = "denied_forbidden"
)

// AccessRequest pairs a resolved identity with the resource owner and
// the rule to evaluate.
type AccessRequest struct {
	ActorID string
	Role    Role
	OwnerID string
	Check   CheckKind
}

// AccessDecision is the immutable result of one rule evaluation.
type AccessDecision struct {
	ActorID   string
	OwnerID   string
	Check     CheckKind
	Effect    Effect
	Reason    string
	CheckedAt time.Time
}

func (d AccessDecision) Allowed() bool { return d.Effect == EffectAllowed }
