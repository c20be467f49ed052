package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/config"
	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/db/memory"
	dbPostgres "github.com/kailas-cloud/beautydex/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/beautydex/internal/db/redis"
	healthuc "github.com/kailas-cloud/beautydex/internal/usecase/health"
)

// openedCatalog is a ready driver plus the driver-specific health probes.
type openedCatalog struct {
	store  db.Store
	checks []healthuc.Option
}

// openCatalog builds the configured driver, waits for it and applies the seed fixture.
func openCatalog(ctx context.Context, cfg *config.CatalogConfig, logger *zap.Logger) (*openedCatalog, error) {
	var seed []map[string]string
	if cfg.SeedFile != "" {
		rows, err := memory.LoadFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = rows
	}

	out := &openedCatalog{}
	switch cfg.Driver {
	case config.DriverMemory:
		store, err := memory.NewStore(seed...)
		if err != nil {
			return nil, err
		}
		logger.Info("In-memory catalog loaded", zap.Int("products", store.Len()))
		out.store = store
		return out, nil

	case config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Redis.Addrs,
			Username:  cfg.Redis.Username,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, readiness(cfg)); err != nil {
			store.Close()
			return nil, fmt.Errorf("redis not ready: %w", err)
		}
		if cfg.Redis.CreateIndex {
			if err := store.EnsureIndex(ctx); err != nil {
				store.Close()
				return nil, err
			}
		}
		out.store = store
		out.checks = append(out.checks, healthuc.WithCheck("index", func(ctx context.Context) error {
			ok, err := store.IndexExists(ctx, store.IndexName())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("index %s missing", store.IndexName())
			}
			return nil
		}))

	case config.DriverPostgres:
		store, err := dbPostgres.NewStore(dbPostgres.Config{
			DSN:          cfg.Postgres.DSN,
			Table:        cfg.Postgres.Table,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
		})
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, readiness(cfg)); err != nil {
			store.Close()
			return nil, fmt.Errorf("postgres not ready: %w", err)
		}
		out.store = store

	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}

	if err := seedCatalog(ctx, out.store, seed); err != nil {
		out.store.Close()
		return nil, err
	}
	if len(seed) > 0 {
		logger.Info("Catalog seeded", zap.Int("products", len(seed)))
	}
	return out, nil
}

func seedCatalog(ctx context.Context, w db.Writer, rows []map[string]string) error {
	for _, row := range rows {
		if err := w.Put(ctx, row); err != nil {
			return fmt.Errorf("seed product %q: %w", row["product_id"], err)
		}
	}
	return nil
}

func readiness(cfg *config.CatalogConfig) time.Duration {
	return time.Duration(cfg.ReadinessTimeout) * time.Second
}
