package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hearthhub/internal/config"
)

const table = "store_state"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Backend stores the serialized store under a text key in a JSONB column.
// Queries run inside the caller's transaction when ctx carries one (see TxManager).
type Backend struct {
	pool  *pgxpool.Pool
	owned bool
	now   func() time.Time
}

// NewBackend wraps an existing pool. The caller keeps ownership of it.
func NewBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{pool: pool, now: time.Now}
}

// Open connects, migrates and returns a Backend that closes its pool on Close.
func Open(ctx context.Context, cfg config.PostgresConfig) (*Backend, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	b := NewBackend(pool)
	b.owned = true
	return b, nil
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
	if err := QuerierFromCtx(ctx, b.pool).QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		return nil, mapError(err, key)
	}
	return payload, nil
}

// Save upserts payload under key.
func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	query, args, err := builder.
		Insert(table).
		Columns("key", "payload", "updated_at").
		Values(key, payload, b.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, b.pool).Exec(ctx, query, args...); err != nil {
		return mapError(err, key)
	}
	return nil
}

// Close releases the pool if Open created it.
func (b *Backend) Close() error {
	if b.owned {
		b.pool.Close()
	}
	return nil
}
