package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	nominationservice "ignite/contexts/competition/nomination-service"
	nominationpostgres "ignite/contexts/competition/nomination-service/adapters/postgres"
	progressionservice "ignite/contexts/competition/progression-service"
	progressionpostgres "ignite/contexts/competition/progression-service/adapters/postgres"
	votingservice "ignite/contexts/competition/voting-service"
	votingpostgres "ignite/contexts/competition/voting-service/adapters/postgres"
	votingworkers "ignite/contexts/competition/voting-service/application/workers"
	accountservice "ignite/contexts/identity-access/account-service"
	accountpostgres "ignite/contexts/identity-access/account-service/adapters/postgres"
	admindashboardservice "ignite/contexts/internal-ops/admin-dashboard-service"
	dashboardpostgres "ignite/contexts/internal-ops/admin-dashboard-service/adapters/postgres"
	"ignite/internal/platform/config"
	"ignite/internal/platform/db"
	"ignite/internal/platform/httpserver"
	"ignite/internal/platform/messaging"
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
	outboxRelay  votingworkers.OutboxRelay
	reconciler   votingworkers.TallyReconciler
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

	var models []any
	models = append(models, accountpostgres.Models()...)
	models = append(models, nominationpostgres.Models()...)
	models = append(models, progressionpostgres.Models()...)
	models = append(models, votingpostgres.Models()...)
	if err := pg.Migrate(models...); err != nil {
		_ = pg.Close()
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accounts := accountservice.NewModule(accountservice.Dependencies{
		Accounts: accountRepo,
		Clock:    accountpostgres.SystemClock{},
		IDGen:    accountpostgres.UUIDGenerator{},
		Secret:   cfg.SecretKey,
		TokenTTL: cfg.AccessTokenTTL,
		Logger:   logger,
	})

	nominationRepo := nominationpostgres.NewRepository(pg.DB, logger)
	nominations := nominationservice.NewModule(nominationservice.Dependencies{
		Nominations: nominationRepo,
		Clock:       nominationpostgres.SystemClock{},
		IDGen:       nominationpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	progressionRepo := progressionpostgres.NewRepository(pg.DB, logger)
	progression := progressionservice.NewModule(progressionservice.Dependencies{
		Participants: progressionRepo,
		Nominations:  progressionRepo,
		Clock:        progressionpostgres.SystemClock{},
		IDGen:        progressionpostgres.UUIDGenerator{},
		Logger:       logger,
	})

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	voting := votingservice.NewModule(votingservice.Dependencies{
		Tokens:        votingRepo,
		Ledger:        votingRepo,
		Nominations:   votingRepo,
		Outbox:        votingRepo,
		Clock:         votingpostgres.SystemClock{},
		IDGen:         votingpostgres.UUIDGenerator{},
		TokenValidity: cfg.TokenValidity,
		Logger:        logger,
	})

	dashboardRepo := dashboardpostgres.NewRepository(pg.DB, logger)
	dashboard := admindashboardservice.NewModule(admindashboardservice.Dependencies{
		Directory: dashboardRepo,
		Logger:    logger,
	})

	server := httpserver.New(
		accounts,
		progression,
		nominations,
		voting,
		dashboard,
		httpserver.SeedAdmin{
			Name:     cfg.SeedAdminName,
			Email:    cfg.SeedAdminEmail,
			Password: cfg.SeedAdminPassword,
		},
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

	bus := messaging.NewBus(logger)
	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: votingworkers.OutboxRelay{
			Outbox:    votingRepo,
			Publisher: bus,
			Clock:     votingpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		reconciler: votingworkers.TallyReconciler{
			Ledger:      votingRepo,
			Nominations: votingRepo,
			Logger:      logger,
		},
		pollInterval: cfg.WorkerPollInterval,
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
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.reconciler.RunOnce(ctx); err != nil {
			return err
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
