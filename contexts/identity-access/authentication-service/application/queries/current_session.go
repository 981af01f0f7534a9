package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	"tokentab/contexts/identity-access/authentication-service/ports"
)

// CurrentSessionUseCase resolves the session for a bearer token. A
// missing or expired session is reported via found=false, not an error.
type CurrentSessionUseCase struct {
	Sessions ports.SessionRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u CurrentSessionUseCase) Execute(ctx context.Context, token string) (entities.UserSession, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.UserSession{}, false, nil
	}

	session, found, err := u.Sessions.GetSession(ctx, token)
	if err != nil {
		return entities.UserSession{}, false, err
	}
	if !found {
		return entities.UserSession{}, false, nil
	}
	if session.ExpiredAt(u.now()) {
		// Lazy cleanup; the periodic sweep handles the rest.
		_ = u.Sessions.DeleteSession(ctx, token)
		return entities.UserSession{}, false, nil
	}
	return session, true, nil
}

func (u CurrentSessionUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
