package commands

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// AcceptRecordCommand marks a pending record as accepted.
type AcceptRecordCommand struct {
	ActorUserID string
	Role        string
	RecordID    string
}

type AcceptRecordUseCase struct {
	Repository ports.Repository
	Access     ports.AccessChecker
	Clock      ports.Clock
	Audit      ports.AuditTrail
	Logger     *slog.Logger
}

func (u AcceptRecordUseCase) Execute(ctx context.Context, command AcceptRecordCommand) (entities.LendingRecord, error) {
	record, err := u.Repository.GetRecord(ctx, command.RecordID)
	if err != nil {
		return entities.LendingRecord{}, err
	}
	if err := u.Access.RequireAccess(ctx, command.ActorUserID, command.Role, record.LenderUserID); err != nil {
		return entities.LendingRecord{}, err
	}
	if record.AcceptanceStatus == entities.AcceptanceAccepted {
		return entities.LendingRecord{}, domainerrors.ErrRecordAlreadyAccepted
	}

	record.AcceptanceStatus = entities.AcceptanceAccepted
	record.Version++
	record.UpdatedAt = u.Clock.Now().UTC()
	if err := u.Repository.UpdateRecord(ctx, record); err != nil {
		return entities.LendingRecord{}, err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "lending_record_accepted", command.ActorUserID, map[string]any{
		"record_id": record.RecordID,
	})
	application.ResolveLogger(u.Logger).Info("lending record accepted",
		"event", "lending_record_accepted",
		"module", "finance-core/lending-ledger-service",
		"layer", "application",
		"record_id", record.RecordID,
	)
	return record, nil
}
