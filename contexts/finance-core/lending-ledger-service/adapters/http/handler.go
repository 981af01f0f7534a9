package http

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/lending-ledger-service/application/commands"
	"tokentab/contexts/finance-core/lending-ledger-service/application/queries"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	transport "tokentab/contexts/finance-core/lending-ledger-service/transport/http"
)

// Handler exposes lending ledger use cases to the HTTP layer. The
// acting identity is resolved by the server from the bearer session
// and passed in explicitly.
type Handler struct {
	ListRecords  queries.ListLendingRecordsUseCase
	CreateRecord commands.CreateLendingRecordUseCase
	LendTokens   commands.LendTokensUseCase
	SettleTokens commands.SettleTokensUseCase
	AcceptRecord commands.AcceptRecordUseCase
	Logger       *slog.Logger
}

func (h Handler) ListRecordsHandler(ctx context.Context, actorUserID string, role string, ownerUserID string) (transport.ListRecordsResponse, error) {
	records, err := h.ListRecords.Execute(ctx, queries.ListQuery{
		ActorUserID: actorUserID,
		Role:        role,
		OwnerUserID: ownerUserID,
	})
	if err != nil {
		return transport.ListRecordsResponse{}, err
	}

	dtos := make([]transport.LendingRecordDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toRecordDTO(record))
	}
	return transport.ListRecordsResponse{Records: dtos}, nil
}

func (h Handler) CreateRecordHandler(ctx context.Context, actorUserID string, role string, request transport.CreateRecordRequest) (transport.LendingRecordDTO, error) {
	record, err := h.CreateRecord.Execute(ctx, commands.CreateRecordCommand{
		ActorUserID:   actorUserID,
		Role:          role,
		PersonName:    request.PersonName,
		InitialTokens: request.InitialTokens,
	})
	if err != nil {
		return transport.LendingRecordDTO{}, err
	}
	return toRecordDTO(record), nil
}

func (h Handler) LendTokensHandler(ctx context.Context, actorUserID string, role string, recordID string, request transport.TokenAmountRequest) (transport.LendingRecordDTO, error) {
	record, err := h.LendTokens.Execute(ctx, commands.LendTokensCommand{
		ActorUserID: actorUserID,
		Role:        role,
		RecordID:    recordID,
		TokenCount:  request.TokenCount,
	})
	if err != nil {
		return transport.LendingRecordDTO{}, err
	}
	return toRecordDTO(record), nil
}

func (h Handler) SettleTokensHandler(ctx context.Context, actorUserID string, role string, recordID string, request transport.TokenAmountRequest) (transport.LendingRecordDTO, error) {
	record, err := h.SettleTokens.Execute(ctx, commands.SettleTokensCommand{
		ActorUserID: actorUserID,
		Role:        role,
		RecordID:    recordID,
		TokenCount:  request.TokenCount,
	})
	if err != nil {
		return transport.LendingRecordDTO{}, err
	}
	return toRecordDTO(record), nil
}

func (h Handler) AcceptRecordHandler(ctx context.Context, actorUserID string, role string, recordID string) (transport.LendingRecordDTO, error) {
	record, err := h.AcceptRecord.Execute(ctx, commands.AcceptRecordCommand{
		ActorUserID: actorUserID,
		Role:        role,
		RecordID:    recordID,
	})
	if err != nil {
		return transport.LendingRecordDTO{}, err
	}
	return toRecordDTO(record), nil
}

func toRecordDTO(record entities.LendingRecord) transport.LendingRecordDTO {
	return transport.LendingRecordDTO{
		RecordID:         record.RecordID,
		LenderUserID:     record.LenderUserID,
		PersonName:       record.PersonName,
		TokenCount:       record.TokenCount,
		TotalTokensLent:  record.TotalTokensLent,
		AcceptanceStatus: string(record.AcceptanceStatus),
		StatusLabel:      record.AcceptanceStatus.Label(),
		CreatedAt:        record.CreatedAt,
		UpdatedAt:        record.UpdatedAt,
	}
}
