package commands

import (
	"context"
	"log/slog"
	"strings"

	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// CreateRecordCommand opens a ledger entry for a person, optionally
// with an initial token amount already lent.
type CreateRecordCommand struct {
	ActorUserID   string
	Role          string
	PersonName    string
	InitialTokens int64
}

type CreateLendingRecordUseCase struct {
	Repository  ports.Repository
	Access      ports.AccessChecker
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Audit       ports.AuditTrail
	Logger      *slog.Logger
}

func (u CreateLendingRecordUseCase) Execute(ctx context.Context, command CreateRecordCommand) (entities.LendingRecord, error) {
	// A record is always created in the actor's own ledger.
	if err := u.Access.RequireAccess(ctx, command.ActorUserID, command.Role, command.ActorUserID); err != nil {
		return entities.LendingRecord{}, err
	}

	personName := strings.TrimSpace(command.PersonName)
	if personName == "" {
		return entities.LendingRecord{}, domainerrors.ErrInvalidRecordInput
	}
	if command.InitialTokens < 0 {
		return entities.LendingRecord{}, domainerrors.ErrInvalidTokenAmount
	}

	recordID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.LendingRecord{}, err
	}

	now := u.Clock.Now().UTC()
	record := entities.LendingRecord{
		RecordID:         recordID,
		LenderUserID:     command.ActorUserID,
		PersonName:       personName,
		TokenCount:       command.InitialTokens,
		TotalTokensLent:  command.InitialTokens,
		AcceptanceStatus: entities.AcceptancePending,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.Repository.CreateRecord(ctx, record); err != nil {
		return entities.LendingRecord{}, err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "lending_record_created", command.ActorUserID, map[string]any{
		"record_id":      record.RecordID,
		"person_name":    record.PersonName,
		"initial_tokens": record.TokenCount,
	})
	application.ResolveLogger(u.Logger).Info("lending record created",
		"event", "lending_record_created",
		"module", "finance-core/lending-ledger-service",
		"layer", "application",
		"record_id", record.RecordID,
		"lender_user_id", record.LenderUserID,
	)
	return record, nil
}
