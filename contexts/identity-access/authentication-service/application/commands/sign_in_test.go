package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	domainerrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
)

type fakeUsers struct {
	users map[string]entities.User
}

func (f fakeUsers) FindByEmail(_ context.Context, email string) (entities.User, bool, error) {
	user, ok := f.users[email]
	return user, ok, nil
}

type fakeSessions struct {
	sessions map[string]entities.UserSession
}

func (f *fakeSessions) PutSession(_ context.Context, session entities.UserSession) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessions) GetSession(_ context.Context, token string) (entities.UserSession, bool, error) {
	session, ok := f.sessions[token]
	return session, ok, nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessions) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	for token, session := range f.sessions {
		if session.ExpiredAt(now) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Verify(hash string, password string) error {
	if hash != "hash:"+password {
		return domainerrors.ErrInvalidCredentials
	}
	return nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type sequenceIDs struct{ next int }

func (g *sequenceIDs) NewID(_ context.Context) (string, error) {
	g.next++
	return "token-" + string(rune('0'+g.next)), nil
}

type recordingAudit struct {
	actions []string
	userIDs []string
}

func (r *recordingAudit) Audit(_ context.Context, action string, userID string, _ map[string]any) error {
	r.actions = append(r.actions, action)
	r.userIDs = append(r.userIDs, userID)
	return nil
}

func newSignInFixture() (SignInUseCase, *fakeSessions, *recordingAudit) {
	sessions := &fakeSessions{sessions: make(map[string]entities.UserSession)}
	audit := &recordingAudit{}
	useCase := SignInUseCase{
		Users: fakeUsers{users: map[string]entities.User{
			"lender@tokentab.dev": {
				UserID:       "user-lender-1",
				Email:        "lender@tokentab.dev",
				PasswordHash: "hash:lender-password",
				Role:         entities.RoleUser,
			},
		}},
		Sessions:    sessions,
		Hasher:      plainHasher{},
		Clock:       fixedClock{at: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)},
		IDGenerator: &sequenceIDs{},
		SessionTTL:  time.Hour,
		Audit:       audit,
	}
	return useCase, sessions, audit
}

func TestSignInIssuesSession(t *testing.T) {
	useCase, sessions, audit := newSignInFixture()

	session, err := useCase.Execute(context.Background(), SignInCommand{
		Email:    " Lender@TokenTab.dev ",
		Password: "lender-password",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if session.UserID != "user-lender-1" || session.Role != entities.RoleUser {
		t.Fatalf("unexpected session identity: %+v", session)
	}
	if !session.ExpiresAt.Equal(session.IssuedAt.Add(time.Hour)) {
		t.Fatalf("expected one hour TTL, got issued=%v expires=%v", session.IssuedAt, session.ExpiresAt)
	}
	if _, ok := sessions.sessions[session.Token]; !ok {
		t.Fatal("session was not persisted")
	}
	if len(audit.actions) != 1 || audit.actions[0] != "user_signed_in" {
		t.Fatalf("expected user_signed_in audit, got %v", audit.actions)
	}
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	useCase, sessions, audit := newSignInFixture()

	_, err := useCase.Execute(context.Background(), SignInCommand{
		Email:    "lender@tokentab.dev",
		Password: "wrong",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("rejected sign in must not persist a session")
	}
	if len(audit.actions) != 1 || audit.actions[0] != "sign_in_rejected" || audit.userIDs[0] != "user-lender-1" {
		t.Fatalf("expected sign_in_rejected audit for user-lender-1, got %v %v", audit.actions, audit.userIDs)
	}
}

func TestSignInRejectsUnknownEmailWithoutAudit(t *testing.T) {
	useCase, _, audit := newSignInFixture()

	_, err := useCase.Execute(context.Background(), SignInCommand{
		Email:    "nobody@tokentab.dev",
		Password: "whatever",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(audit.actions) != 0 {
		t.Fatalf("unknown email must not produce attributed audit entries, got %v", audit.actions)
	}
}

func TestSignInRejectsMalformedEmail(t *testing.T) {
	useCase, _, _ := newSignInFixture()

	_, err := useCase.Execute(context.Background(), SignInCommand{Email: "not-an-email", Password: "x"})
	if !errors.Is(err, domainerrors.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignOutDeletesSessionAndAudits(t *testing.T) {
	useCase, sessions, audit := newSignInFixture()

	session, err := useCase.Execute(context.Background(), SignInCommand{
		Email:    "lender@tokentab.dev",
		Password: "lender-password",
	})
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	signOut := SignOutUseCase{Sessions: sessions, Audit: audit}
	if err := signOut.Execute(context.Background(), session.Token); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}
	if _, ok := sessions.sessions[session.Token]; ok {
		t.Fatal("session survived sign out")
	}
	if audit.actions[len(audit.actions)-1] != "user_signed_out" {
		t.Fatalf("expected user_signed_out audit, got %v", audit.actions)
	}

	if err := signOut.Execute(context.Background(), session.Token); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for repeated sign out, got %v", err)
	}
}
