package commands

import (
	"context"
	"log/slog"
	"strings"

	"tokentab/contexts/identity-access/authentication-service/application"
	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
	"tokentab/contexts/identity-access/authentication-service/ports"
)

// SignOutUseCase invalidates one bearer session.
type SignOutUseCase struct {
	Sessions ports.SessionRepository
	Audit    ports.AuditTrail
	Logger   *slog.Logger
}

func (u SignOutUseCase) Execute(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrUnauthorized
	}

	session, found, err := u.Sessions.GetSession(ctx, token)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrUnauthorized
	}
	if err := u.Sessions.DeleteSession(ctx, token); err != nil {
		return err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "user_signed_out", session.UserID, map[string]any{
		"email": session.Email,
	})
	application.ResolveLogger(u.Logger).Info("user signed out",
		"event", "auth_sign_out_succeeded",
		"module", "identity-access/authentication-service",
		"layer", "application",
		"user_id", session.UserID,
	)
	return nil
}
