package main

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// crediterCustody is implemented by both custody backends.
type crediterCustody interface {
	port.Custody
	db.Crediter
}

type store struct {
	journal port.Journal
	custody crediterCustody
	close   func()
}

// openStore wires the journal and custody backends selected by
// STORE_DRIVER.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*store, error) {
	vault := domain.VaultActor(cfg.Campaign.ID)

	switch cfg.Store.Driver {
	case configs.StoreDriverMemory:
		logger.Warn("using in-memory store, state is lost on exit")
		return &store{
			journal: memory.NewJournal(),
			custody: memory.NewCustody(vault),
			close:   func() {},
		}, nil

	case configs.StoreDriverPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		return &store{
			journal: postgres.NewJournal(pool),
			custody: postgres.NewCustody(pool, vault),
			close:   pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
