package ports

import (
	"context"
	"time"

	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository persists lending records. UpdateRecord applies an
// optimistic concurrency check: the caller submits the record with its
// Version already bumped, and the adapter matches rows on Version-1.
type Repository interface {
	ListByLender(ctx context.Context, lenderUserID string) ([]entities.LendingRecord, error)
	GetRecord(ctx context.Context, recordID string) (entities.LendingRecord, error)
	CreateRecord(ctx context.Context, record entities.LendingRecord) error
	UpdateRecord(ctx context.Context, record entities.LendingRecord) error
}

// AccessChecker is the authorization seam. RequireAccess returns nil
// when the actor may touch resources owned by ownerUserID.
type AccessChecker interface {
	RequireAccess(ctx context.Context, actorUserID string, role string, ownerUserID string) error
}

type AuditTrail interface {
	Audit(ctx context.Context, action string, userID string, details map[string]any) error
}
