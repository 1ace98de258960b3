package storage

import (
	"context"
	"fmt"

	mem "days-since/internal/adapters/storage/memory"
	pg "days-since/internal/adapters/storage/postgres"
	rds "days-since/internal/adapters/storage/redis"
	sqlitestore "days-since/internal/adapters/storage/sqlite"
	"days-since/internal/domain/events"
	"days-since/internal/platform/config"
)

// Open construye el store indicado por STORE_DRIVER; la func devuelta libera el backend.
func Open(ctx context.Context, cfg config.Config) (events.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverMemory, "":
		return mem.NewEventRepo(), noop, nil

	case config.DriverSQLite:
		s, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		return pg.NewEventsRepo(db), db.Close, nil

	case config.DriverRedis:
		c, err := rds.NewClient(ctx, rds.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		return rds.NewEventsRepo(c), c.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown STORE_DRIVER %q", config.ErrInvalidConfig, cfg.StoreDriver)
	}
}
