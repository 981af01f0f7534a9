package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	"tokentab/contexts/identity-access/authentication-service/domain/valueobjects"
)

// Store is an in-memory user and session repository for tests and
// local runs. It also provides Clock and IDGenerator behavior.
type Store struct {
	mu       sync.RWMutex
	users    map[string]entities.User // keyed by normalized email
	sessions map[string]entities.UserSession
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]entities.User),
		sessions: make(map[string]entities.UserSession),
	}
}

// SeedUser registers a user, overwriting any prior user with the same
// email. The email must already be normalized by the caller's value
// object or it is normalized here.
func (s *Store) SeedUser(user entities.User) {
	email, err := valueobjects.NewEmail(user.Email)
	if err != nil {
		return
	}
	user.Email = email.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
}

func (s *Store) FindByEmail(_ context.Context, email string) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	return user, ok, nil
}

func (s *Store) PutSession(_ context.Context, session entities.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, token string) (entities.UserSession, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	return session, ok, nil
}

func (s *Store) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, session := range s.sessions {
		if session.ExpiredAt(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
