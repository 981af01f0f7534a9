package http

import (
	"context"
	"log/slog"

	"tokentab/contexts/identity-access/authentication-service/application/commands"
	"tokentab/contexts/identity-access/authentication-service/application/queries"
	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	transport "tokentab/contexts/identity-access/authentication-service/transport/http"
)

// Handler exposes authentication use cases to the HTTP layer.
type Handler struct {
	SignIn         commands.SignInUseCase
	SignOut        commands.SignOutUseCase
	CurrentSession queries.CurrentSessionUseCase
	Logger         *slog.Logger
}

func (h Handler) SignInHandler(ctx context.Context, request transport.SignInRequest) (transport.SessionResponse, error) {
	session, err := h.SignIn.Execute(ctx, commands.SignInCommand{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return transport.SessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (h Handler) SignOutHandler(ctx context.Context, token string) error {
	return h.SignOut.Execute(ctx, token)
}

func (h Handler) CurrentSessionHandler(ctx context.Context, token string) (transport.SessionResponse, bool, error) {
	session, found, err := h.CurrentSession.Execute(ctx, token)
	if err != nil || !found {
		return transport.SessionResponse{}, found, err
	}
	return toSessionResponse(session), true, nil
}

func toSessionResponse(session entities.UserSession) transport.SessionResponse {
	return transport.SessionResponse{
		Token:     session.Token,
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	}
}
