package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !IsSupportedDriver(s.Driver) {
		return fmt.Errorf("driver must be one of %s (got %q)", strings.Join(Drivers, ", "), s.Driver)
	}
	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("key is required")
	}
	if s.SaveTimeout <= 0 {
		return fmt.Errorf("save_timeout must be > 0 (got %v)", s.SaveTimeout)
	}

	switch s.Driver {
	case DriverSQLite:
		if strings.TrimSpace(s.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
		if s.Postgres.MaxConns <= 0 {
			return fmt.Errorf("postgres.max_conns must be > 0 (got %d)", s.Postgres.MaxConns)
		}
		if s.Postgres.MinConns < 0 || s.Postgres.MinConns > s.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns must be within [0, max_conns] (got %d)", s.Postgres.MinConns)
		}
	case DriverRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for driver %q", s.Driver)
		}
		if s.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be >= 0 (got %d)", s.Redis.DB)
		}
	}

	return nil
}

func (s *StoreConfig) validate() error {
	if s.NotificationCap <= 0 {
		return fmt.Errorf("notification_cap must be > 0 (got %d)", s.NotificationCap)
	}
	if s.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", s.RecentLimit)
	}
	if strings.TrimSpace(s.DefaultOwnerID) == "" {
		return fmt.Errorf("default_owner_id is required")
	}
	return nil
}
