package unit

import (
	"context"
	"errors"
	"testing"

	authorization "tokentab/contexts/identity-access/authorization-service"
	authzerrors "tokentab/contexts/identity-access/authorization-service/domain/errors"
)

func TestGuardOwnership(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	if err := module.Guard.RequireAccess(ctx, "user-1", "user", "user-1"); err != nil {
		t.Fatalf("owner access must pass, got %v", err)
	}
	if err := module.Guard.RequireAccess(ctx, "user-1", "user", "user-2"); !errors.Is(err, authzerrors.ErrForbidden) {
		t.Fatalf("foreign access must be forbidden, got %v", err)
	}
	if err := module.Guard.RequireAccess(ctx, "admin-1", "admin", "user-2"); err != nil {
		t.Fatalf("admin override must pass, got %v", err)
	}
}

func TestGuardMissingIdentity(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	err := module.Guard.RequireAccess(ctx, "", "user", "user-1")
	if !errors.Is(err, authzerrors.ErrUnauthorized) {
		t.Fatalf("missing identity must be unauthorized, got %v", err)
	}
	// Unauthorized wins even when the claimed owner matches.
	err = module.Guard.RequireAccess(ctx, "", "admin", "")
	if !errors.Is(err, authzerrors.ErrUnauthorized) {
		t.Fatalf("missing identity with admin role must be unauthorized, got %v", err)
	}
}

func TestGuardAdminOnly(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	if err := module.Guard.RequireAdmin(ctx, "user-1", "user"); !errors.Is(err, authzerrors.ErrForbidden) {
		t.Fatalf("non-admin must be forbidden, got %v", err)
	}
	if err := module.Guard.RequireAdmin(ctx, "admin-1", "admin"); err != nil {
		t.Fatalf("admin must pass, got %v", err)
	}
}
