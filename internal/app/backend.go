package app

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hearthhub/internal/adapter/memory"
	"github.com/heartmarshall/hearthhub/internal/adapter/postgres"
	"github.com/heartmarshall/hearthhub/internal/adapter/redis"
	"github.com/heartmarshall/hearthhub/internal/adapter/sqlite"
	"github.com/heartmarshall/hearthhub/internal/config"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// OpenBackend connects the storage driver named in cfg. The returned close
// func releases the connection and is never nil.
func OpenBackend(ctx context.Context, cfg config.StorageConfig) (store.Backend, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), noopClose, nil
	case config.DriverSQLite:
		b, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noopClose, err
		}
		return b, b.Close, nil
	case config.DriverPostgres:
		b, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, noopClose, err
		}
		return b, b.Close, nil
	case config.DriverRedis:
		b, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, noopClose, err
		}
		return b, b.Close, nil
	default:
		return nil, noopClose, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func noopClose() error { return nil }
