// Package sqlite persists the store payload in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/heartmarshall/hearthhub/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

const table = "store_state"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Backend is a key-value store.Backend on top of a single SQLite table.
type Backend struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database file at path and applies migrations.
func Open(ctx context.Context, path string) (*Backend, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer at a time; SQLite serializes anyway.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewFromDB(db), nil
}

// NewFromDB wraps an already migrated database.
func NewFromDB(db *sql.DB) *Backend {
	return &Backend{db: db, now: time.Now}
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sqlite migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, dir)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Load returns the payload stored under key or domain.ErrNotFound.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.
		Select("payload").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load query: %w", err)
	}

	var payload []byte
	if err := b.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		return nil, mapError(err, key)
	}
	return payload, nil
}

// Save upserts payload under key.
func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	query, args, err := builder.
		Insert(table).
		Columns("key", "payload", "updated_at").
		Values(key, payload, b.now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Close closes the underlying database.
func (b *Backend) Close() error {
	return b.db.Close()
}

func mapError(err error, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("state %s: %w", key, domain.ErrNotFound)
	}
	return fmt.Errorf("state %s: %w", key, err)
}
