// Package backend opens the store selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/cartola-scouts/internal/config"
	"github.com/albapepper/cartola-scouts/internal/db"
	"github.com/albapepper/cartola-scouts/internal/store"
	"github.com/albapepper/cartola-scouts/internal/store/postgres"
	"github.com/albapepper/cartola-scouts/internal/store/sqlite"
)

// Open connects to the configured store.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connected",
			"driver", cfg.StoreDriver,
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		return postgres.New(pool), nil
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connected", "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
