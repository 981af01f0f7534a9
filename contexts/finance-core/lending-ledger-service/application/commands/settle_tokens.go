package commands

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// SettleTokensCommand returns tokens against a record's outstanding
// balance. The lifetime total is untouched.
type SettleTokensCommand struct {
	ActorUserID string
	Role        string
	RecordID    string
	TokenCount  int64
}

type SettleTokensUseCase struct {
	Repository ports.Repository
	Access     ports.AccessChecker
	Clock      ports.Clock
	Audit      ports.AuditTrail
	Logger     *slog.Logger
}

func (u SettleTokensUseCase) Execute(ctx context.Context, command SettleTokensCommand) (entities.LendingRecord, error) {
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

	if command.TokenCount > record.TokenCount {
		return entities.LendingRecord{}, domainerrors.ErrInvalidTokenAmount
	}

	record.TokenCount -= command.TokenCount
	if record.TokenCount > record.TotalTokensLent {
		return entities.LendingRecord{}, domainerrors.ErrBalanceExceedsTotal
	}
	record.Version++
	record.UpdatedAt = u.Clock.Now().UTC()
	if err := u.Repository.UpdateRecord(ctx, record); err != nil {
		return entities.LendingRecord{}, err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "tokens_settled", command.ActorUserID, map[string]any{
		"record_id":   record.RecordID,
		"token_count": command.TokenCount,
		"balance":     record.TokenCount,
	})
	application.ResolveLogger(u.Logger).Info("tokens settled",
		"event", "lending_tokens_settled",
		"module", "finance-core/lending-ledger-service",
		"layer", "application",
		"record_id", record.RecordID,
		"token_count", command.TokenCount,
	)
	return record, nil
}
