package authentication

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	bcryptadapter "tokentab/contexts/identity-access/authentication-service/adapters/bcrypt"
	httpadapter "tokentab/contexts/identity-access/authentication-service/adapters/http"
	"tokentab/contexts/identity-access/authentication-service/adapters/memory"
	"tokentab/contexts/identity-access/authentication-service/application"
	"tokentab/contexts/identity-access/authentication-service/application/commands"
	"tokentab/contexts/identity-access/authentication-service/application/queries"
	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	"tokentab/contexts/identity-access/authentication-service/ports"
)

// Module wires the authentication service.
type Module struct {
	Handler               httpadapter.Handler
	SignIn                commands.SignInUseCase
	SignOut               commands.SignOutUseCase
	CurrentSession        queries.CurrentSessionUseCase
	RequireAuthentication queries.RequireAuthenticationUseCase
}

// Dependencies lists the ports the module needs from the outside.
type Dependencies struct {
	Users       ports.UserRepository
	Sessions    ports.SessionRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	SessionTTL  time.Duration
	Audit       ports.AuditTrail
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	logger := application.ResolveLogger(deps.Logger)

	signIn := commands.SignInUseCase{
		Users:       deps.Users,
		Sessions:    deps.Sessions,
		Hasher:      deps.Hasher,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		SessionTTL:  deps.SessionTTL,
		Audit:       deps.Audit,
		Logger:      logger,
	}
	signOut := commands.SignOutUseCase{
		Sessions: deps.Sessions,
		Audit:    deps.Audit,
		Logger:   logger,
	}
	currentSession := queries.CurrentSessionUseCase{
		Sessions: deps.Sessions,
		Clock:    deps.Clock,
		Logger:   logger,
	}
	requireAuthentication := queries.RequireAuthenticationUseCase{
		CurrentSession: currentSession,
		Logger:         logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SignIn:         signIn,
			SignOut:        signOut,
			CurrentSession: currentSession,
			Logger:         logger,
		},
		SignIn:                signIn,
		SignOut:               signOut,
		CurrentSession:        currentSession,
		RequireAuthentication: requireAuthentication,
	}
}

// NewInMemoryModule builds the module on the memory store with a few
// seeded accounts for local runs and tests.
func NewInMemoryModule(logger *slog.Logger) (Module, *memory.Store) {
	store := memory.NewStore()
	hasher := bcryptadapter.Hasher{Cost: bcrypt.MinCost}

	seed := []struct {
		userID   string
		email    string
		password string
		role     string
	}{
		{"user-lender-1", "lender@tokentab.dev", "lender-password", entities.RoleUser},
		{"user-lender-2", "friend@tokentab.dev", "friend-password", entities.RoleUser},
		{"user-admin-1", "admin@tokentab.dev", "admin-password", entities.RoleAdmin},
	}
	for _, account := range seed {
		hash, err := hasher.Hash(account.password)
		if err != nil {
			continue
		}
		store.SeedUser(entities.User{
			UserID:       account.userID,
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
			CreatedAt:    store.Now(),
		})
	}

	module := NewModule(Dependencies{
		Users:       store,
		Sessions:    store,
		Hasher:      hasher,
		Clock:       store,
		IDGenerator: store,
		Audit:       nil,
		Logger:      logger,
	})
	return module, store
}
