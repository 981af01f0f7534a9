package services

import (
	"strings"

	"tokentab/contexts/identity-access/authorization-service/domain/entities"
)

// Evaluate applies the access rules in precedence order:
// 1. a missing actor identity is unauthorized before any other rule runs;
// 2. admin role passes every further check;
// 3. ownership and combined checks compare actor against owner;
// 4. admin-only checks deny non-admins even on their own resources.
func Evaluate(request entities.AccessRequest) (entities.Effect, string) {
	if strings.TrimSpace(request.ActorID) == "" {
		return entities.EffectDeniedUnauthorized, "missing_identity"
	}
	if request.Role.IsAdmin() {
		return entities.EffectAllowed, "admin_override"
	}

	switch request.Check {
	case entities.CheckAdminOnly:
		return entities.EffectDeniedForbidden, "admin_required"
	case entities.CheckOwnership, entities.CheckResourceAccess:
		if request.ActorID == request.OwnerID {
			return entities.EffectAllowed, "owner"
		}
		return entities.EffectDeniedForbidden, "not_owner"
	default:
		return entities.EffectDeniedForbidden, "unknown_check"
	}
}
