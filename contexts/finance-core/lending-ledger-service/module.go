package lendingledger

import (
	"log/slog"

	httpadapter "tokentab/contexts/finance-core/lending-ledger-service/adapters/http"
	"tokentab/contexts/finance-core/lending-ledger-service/adapters/memory"
	"tokentab/contexts/finance-core/lending-ledger-service/application"
	"tokentab/contexts/finance-core/lending-ledger-service/application/commands"
	"tokentab/contexts/finance-core/lending-ledger-service/application/queries"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

// Module wires the lending ledger service.
type Module struct {
	Handler      httpadapter.Handler
	ListRecords  queries.ListLendingRecordsUseCase
	CreateRecord commands.CreateLendingRecordUseCase
	LendTokens   commands.LendTokensUseCase
	SettleTokens commands.SettleTokensUseCase
	AcceptRecord commands.AcceptRecordUseCase
}

// Dependencies lists the ports the module needs from the outside.
type Dependencies struct {
	Repository  ports.Repository
	Access      ports.AccessChecker
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Audit       ports.AuditTrail
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	logger := application.ResolveLogger(deps.Logger)

	listRecords := queries.ListLendingRecordsUseCase{
		Repository: deps.Repository,
		Access:     deps.Access,
		Logger:     logger,
	}
	createRecord := commands.CreateLendingRecordUseCase{
		Repository:  deps.Repository,
		Access:      deps.Access,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Audit:       deps.Audit,
		Logger:      logger,
	}
	lendTokens := commands.LendTokensUseCase{
		Repository: deps.Repository,
		Access:     deps.Access,
		Clock:      deps.Clock,
		Audit:      deps.Audit,
		Logger:     logger,
	}
	settleTokens := commands.SettleTokensUseCase{
		Repository: deps.Repository,
		Access:     deps.Access,
		Clock:      deps.Clock,
		Audit:      deps.Audit,
		Logger:     logger,
	}
	acceptRecord := commands.AcceptRecordUseCase{
		Repository: deps.Repository,
		Access:     deps.Access,
		Clock:      deps.Clock,
		Audit:      deps.Audit,
		Logger:     logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ListRecords:  listRecords,
			CreateRecord: createRecord,
			LendTokens:   lendTokens,
			SettleTokens: settleTokens,
			AcceptRecord: acceptRecord,
			Logger:       logger,
		},
		ListRecords:  listRecords,
		CreateRecord: createRecord,
		LendTokens:   lendTokens,
		SettleTokens: settleTokens,
		AcceptRecord: acceptRecord,
	}
}

// NewInMemoryModule builds the module on the memory store.
func NewInMemoryModule(access ports.AccessChecker, logger *slog.Logger) (Module, *memory.Store) {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Access:      access,
		Clock:       store,
		IDGenerator: store,
		Audit:       nil,
		Logger:      logger,
	})
	return module, store
}
