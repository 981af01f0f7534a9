package commands

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// LendTokensCommand adds tokens to a record's outstanding balance and
// lifetime total.
type LendTokensCommand struct {
	ActorUserID string
	Role        string
	RecordID    string
	TokenCount  int64
}

type LendTokensUseCase struct {
	Repository ports.Repository
	Access     ports.AccessChecker
	Clock      ports.Clock
	Audit      ports.AuditTrail
	Logger     *slog.Logger
}

func (u LendTokensUseCase) Execute(ctx context.Context, command LendTokensCommand) (entities.LendingRecord, error) {
	if command.TokenCount <= 0 {
		return entities.LendingRecord{}, domainerrors.ErrInvalidTokenAmount
	}

	record, err := u.Repository.GetRecord(ctx, command.RecordID)
	if err != nil {
		return entities.LendingRecord{}, err
	}
	if err := u.Access.RequireAccess(ctx, command.ActorUserID, command.Role, record.LenderUserID); err != nil {
		return entities.LendingRecord{}, err
	}

	record.TokenCount += command.TokenCount
	record.TotalTokensLent += command.TokenCount
	if record.TokenCount > record.TotalTokensLent {
		// Only possible when the stored row was already corrupt.
		return entities.LendingRecord{}, domainerrors.ErrBalanceExceedsTotal
	}
	record.Version++
	record.UpdatedAt = u.Clock.Now().UTC()
	if err := u.Repository.UpdateRecord(ctx, record); err != nil {
		return entities.LendingRecord{}, err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "tokens_lent", command.ActorUserID, map[string]any{
		"record_id":   record.RecordID,
		"token_count": command.TokenCount,
		"balance":     record.TokenCount,
	})
	application.ResolveLogger(u.Logger).Info("tokens lent",
		"event", "lending_tokens_lent",
		"module", "finance-core/lending-ledger-service",
		"layer", "application",
		"record_id", record.RecordID,
		"token_count", command.TokenCount,
	)
	return record, nil
}
