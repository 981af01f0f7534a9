package tokenconversion

import (
	"log/slog"

	httpadapter "tokentab/contexts/finance-core/token-conversion-engine/adapters/http"
	"tokentab/contexts/finance-core/token-conversion-engine/application"
)

// Module is the token-conversion-engine composition root exposed to
// runtime wiring. The engine is pure, so there are no persistence ports.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{Logger: deps.Logger}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}
