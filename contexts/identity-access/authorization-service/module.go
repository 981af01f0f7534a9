package authorization

import (
	"log/slog"

	httpadapter "tokentab/contexts/identity-access/authorization-service/adapters/http"
	"tokentab/contexts/identity-access/authorization-service/application/queries"
	"tokentab/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to
// runtime wiring. Guard doubles as the access-checker port other
// contexts consume.
type Module struct {
	Handler httpadapter.Handler
	Guard   queries.CheckAccessUseCase
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Clock  ports.Clock
	Audit  ports.AuditTrail
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	guard := queries.CheckAccessUseCase{
		Clock:  deps.Clock,
		Audit:  deps.Audit,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{CheckAccess: guard, Logger: deps.Logger},
		Guard:   guard,
	}
}

// NewInMemoryModule builds a development/testing module with wall-clock
// time and no audit sink.
func NewInMemoryModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{Logger: logger})
}
