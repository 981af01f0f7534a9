package commands

import (
	"context"
	"log/slog"
	"time"

	"tokentab/contexts/identity-access/authentication-service/application"
	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
	"tokentab/contexts/identity-access/authentication-service/domain/valueobjects"
	"tokentab/contexts/identity-access/authentication-service/ports"
)

// SignInCommand is the request model for establishing a session.
type SignInCommand struct {
	Email    string
	Password string
}

// SignInUseCase verifies credentials and mints an opaque bearer session.
type SignInUseCase struct {
	Users       ports.UserRepository
	Sessions    ports.SessionRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	SessionTTL  time.Duration
	Audit       ports.AuditTrail
	Logger      *slog.Logger
}

func (u SignInUseCase) Execute(ctx context.Context, command SignInCommand) (entities.UserSession, error) {
	email, err := valueobjects.NewEmail(command.Email)
	if err != nil {
		return entities.UserSession{}, err
	}
	if command.Password == "" {
		return entities.UserSession{}, domainerrors.ErrInvalidCredentials
	}

	logger := application.ResolveLogger(u.Logger)
	user, found, err := u.Users.FindByEmail(ctx, email.String())
	if err != nil {
		return entities.UserSession{}, err
	}
	if !found {
		logger.Warn("sign in rejected for unknown email",
			"event", "auth_sign_in_unknown_email",
			"module", "identity-access/authentication-service",
			"layer", "application",
			"email", email.String(),
		)
		return entities.UserSession{}, domainerrors.ErrInvalidCredentials
	}

	if err := u.Hasher.Verify(user.PasswordHash, command.Password); err != nil {
		logger.Warn("sign in rejected",
			"event", "auth_sign_in_rejected",
			"module", "identity-access/authentication-service",
			"layer", "application",
			"user_id", user.UserID,
		)
		application.AuditEvent(ctx, u.Audit, u.Logger, "sign_in_rejected", user.UserID, map[string]any{
			"email": user.Email,
		})
		return entities.UserSession{}, domainerrors.ErrInvalidCredentials
	}

	token, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.UserSession{}, err
	}

	now := u.now()
	session := entities.UserSession{
		Token:     token,
		UserID:    user.UserID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(u.sessionTTL()),
	}
	if err := u.Sessions.PutSession(ctx, session); err != nil {
		return entities.UserSession{}, err
	}

	application.AuditEvent(ctx, u.Audit, u.Logger, "user_signed_in", user.UserID, map[string]any{
		"email": user.Email,
		"role":  user.Role,
	})
	logger.Info("user signed in",
		"event", "auth_sign_in_succeeded",
		"module", "identity-access/authentication-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", user.Role,
	)
	return session, nil
}

func (u SignInUseCase) sessionTTL() time.Duration {
	if u.SessionTTL <= 0 {
		return 30 * 24 * time.Hour
	}
	return u.SessionTTL
}

func (u SignInUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
