package config

import (
	"slices"
	"time"
)

// Supported storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Drivers lists every storage driver accepted by StorageConfig.Driver.
var Drivers = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverRedis}

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects and configures the key-value backend the store persists to.
type StorageConfig struct {
	Driver      string         `yaml:"driver"       env:"STORAGE_DRIVER"       env-default:"sqlite"`
	Key         string         `yaml:"key"          env:"STORAGE_KEY"          env-default:"persist:root"`
	SaveTimeout time.Duration  `yaml:"save_timeout" env:"STORAGE_SAVE_TIMEOUT" env-default:"5s"`
	SQLite      SQLiteConfig   `yaml:"sqlite"`
	Postgres    PostgresConfig `yaml:"postgres"`
	Redis       RedisConfig    `yaml:"redis"`
}

// SQLiteConfig holds the on-disk database location.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"hearthhub.db"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"POSTGRES_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"POSTGRES_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"POSTGRES_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"POSTGRES_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// StoreConfig holds in-memory store limits and defaults.
type StoreConfig struct {
	NotificationCap int    `yaml:"notification_cap" env:"STORE_NOTIFICATION_CAP" env-default:"50"`
	DefaultOwnerID  string `yaml:"default_owner_id" env:"STORE_DEFAULT_OWNER_ID" env-default:"local-user"`
	RecentLimit     int    `yaml:"recent_limit"     env:"STORE_RECENT_LIMIT"     env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IsSupportedDriver reports whether driver is one of Drivers.
func IsSupportedDriver(driver string) bool {
	return slices.Contains(Drivers, driver)
}
