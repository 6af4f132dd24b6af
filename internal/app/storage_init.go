package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/orders/internal/storage/postgres"
)

// runtimeDependencies содержит зависимости, выбранные по storage driver.
type runtimeDependencies struct {
	repo           domain.OrderRepository
	outboxRepo     domain.OutboxRepository
	timelineRepo   domain.TimelineRepository
	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies создаёт хранилища по cfg.StorageDriver.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Info("using in-memory storage")
		return runtimeDependencies{
			repo:         memory.NewOrderRepository(),
			outboxRepo:   memory.NewOutboxRepository(),
			timelineRepo: memory.NewTimelineRepository(),
			storageChecker: healthcheck.NewSimpleChecker("storage", func() error {
				return nil
			}),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres dsn is required for storage driver %q", cfg.StorageDriver)
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("open postgres: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres schema is up to date")
		}
		logger.Info("using postgres storage")

		return runtimeDependencies{
			repo:         postgres.NewOrderRepository(store),
			outboxRepo:   postgres.NewOutboxRepository(store),
			timelineRepo: postgres.NewTimelineRepository(store),
			storageChecker: healthcheck.NewSimpleChecker("storage", func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
				defer cancel()
				return store.Ping(pingCtx)
			}),
			closeFn: store.Close,
		}, nil

	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
