package queries

import (
	"context"
	"log/slog"

	"tokentab/contexts/identity-access/authentication-service/application"
	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
)

// RequireAuthenticationUseCase is the failing variant of session
// resolution: no session means ErrUnauthorized, never a guest identity.
type RequireAuthenticationUseCase struct {
	CurrentSession CurrentSessionUseCase
	Logger         *slog.Logger
}

func (u RequireAuthenticationUseCase) Execute(ctx context.Context, token string) (entities.UserSession, error) {
	session, found, err := u.CurrentSession.Execute(ctx, token)
	if err != nil {
		return entities.UserSession{}, err
	}
	if !found {
		application.ResolveLogger(u.Logger).Warn("authentication required",
			"event", "auth_session_missing",
			"module", "identity-access/authentication-service",
			"layer", "application",
		)
		return entities.UserSession{}, domainerrors.ErrUnauthorized
	}
	return session, nil
}
