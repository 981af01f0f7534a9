package queries

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// ListQuery identifies the actor and the ledger owner being read.
type ListQuery struct {
	ActorUserID string
	Role        string
	OwnerUserID string
}

// ListLendingRecordsUseCase returns the owner's records, newest first
// per the adapter's ordering. Authorization runs before any storage
// read so a forbidden request leaks nothing about the ledger.
type ListLendingRecordsUseCase struct {
	Repository ports.Repository
	Access     ports.AccessChecker
	Logger     *slog.Logger
}

func (u ListLendingRecordsUseCase) Execute(ctx context.Context, query ListQuery) ([]entities.LendingRecord, error) {
	if err := u.Access.RequireAccess(ctx, query.ActorUserID, query.Role, query.OwnerUserID); err != nil {
		return nil, err
	}

	records, err := u.Repository.ListByLender(ctx, query.OwnerUserID)
	if err != nil {
		return nil, err
	}

	logger := application.ResolveLogger(u.Logger)
	filtered := make([]entities.LendingRecord, 0, len(records))
	for _, record := range records {
		// A foreign row here means the adapter filter is broken.
		// Drop it rather than leak another lender's ledger.
		if record.LenderUserID != query.OwnerUserID {
			logger.Error("adapter returned a record for a different lender",
				"event", "lending_foreign_record_dropped",
				"module", "finance-core/lending-ledger-service",
				"layer", "application",
				"record_id", record.RecordID,
				"owner_user_id", query.OwnerUserID,
			)
			continue
		}
		if !record.WellFormed() {
			logger.Warn("stored lending record violates ledger invariants",
				"event", "lending_record_ill_formed",
				"module", "finance-core/lending-ledger-service",
				"layer", "application",
				"record_id", record.RecordID,
				"token_count", record.TokenCount,
				"total_tokens_lent", record.TotalTokensLent,
			)
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}
