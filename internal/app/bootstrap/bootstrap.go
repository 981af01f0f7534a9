package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	restaurantservice "tokentab/contexts/dining-experience/restaurant-service"
	restaurantpostgres "tokentab/contexts/dining-experience/restaurant-service/adapters/postgres"
	lendingledger "tokentab/contexts/finance-core/lending-ledger-service"
	lendingpostgres "tokentab/contexts/finance-core/lending-ledger-service/adapters/postgres"
	tokenconversion "tokentab/contexts/finance-core/token-conversion-engine"
	authentication "tokentab/contexts/identity-access/authentication-service"
	bcryptadapter "tokentab/contexts/identity-access/authentication-service/adapters/bcrypt"
	authpostgres "tokentab/contexts/identity-access/authentication-service/adapters/postgres"
	authorization "tokentab/contexts/identity-access/authorization-service"
	"tokentab/internal/platform/audit"
	"tokentab/internal/platform/config"
	"tokentab/internal/platform/db"
	"tokentab/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	retention    audit.Retention
	sessions     *authpostgres.Repository
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	recorder := audit.Recorder{
		Store:  audit.NewPostgresStore(pg.DB),
		Logger: logger,
	}

	authzModule := authorization.NewModule(authorization.Dependencies{
		Audit:  recorder,
		Logger: logger,
	})

	authRepo := authpostgres.NewRepository(pg.DB)
	authnModule := authentication.NewModule(authentication.Dependencies{
		Users:       authRepo,
		Sessions:    authRepo,
		Hasher:      bcryptadapter.Hasher{},
		Clock:       authpostgres.SystemClock{},
		IDGenerator: authpostgres.UUIDGenerator{},
		SessionTTL:  cfg.SessionTTL,
		Audit:       recorder,
		Logger:      logger,
	})

	lendingModule := lendingledger.NewModule(lendingledger.Dependencies{
		Repository:  lendingpostgres.NewRepository(pg.DB),
		Access:      authzModule.Guard,
		Clock:       lendingpostgres.SystemClock{},
		IDGenerator: lendingpostgres.UUIDGenerator{},
		Audit:       recorder,
		Logger:      logger,
	})

	conversionModule := tokenconversion.NewModule(tokenconversion.Dependencies{
		Logger: logger,
	})

	restaurantModule := restaurantservice.NewModule(restaurantservice.Dependencies{
		Repository: restaurantpostgres.NewRepository(pg.DB),
		Clock:      restaurantpostgres.SystemClock{},
		Logger:     logger,
	})

	server := httpserver.New(
		authnModule,
		authzModule,
		lendingModule,
		conversionModule,
		restaurantModule,
		pg,
		cfg.ServiceName,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	return &WorkerApp{
		postgres: pg,
		retention: audit.Retention{
			Store:  audit.NewPostgresStore(pg.DB),
			Window: cfg.AuditRetention,
			Logger: logger,
		},
		sessions:     authpostgres.NewRepository(pg.DB),
		pollInterval: time.Hour,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.retention.RunOnce(ctx); err != nil {
			return err
		}
		removed, err := w.sessions.DeleteExpiredSessions(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		if removed > 0 {
			w.logger.Info("expired sessions removed",
				"event", "session_sweep_completed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"removed", removed,
			)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
