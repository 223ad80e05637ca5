// Package redis persists the store payload as a single Redis string.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/hearthhub/internal/config"
	"github.com/heartmarshall/hearthhub/internal/domain"
)

// Backend is a store.Backend backed by Redis GET/SET. Keys never expire.
type Backend struct {
	client goredis.UniversalClient
}

// New wraps an existing client.
func New(client goredis.UniversalClient) *Backend {
	return &Backend{client: client}
}

// Open dials Redis and verifies the connection with PING.
func Open(ctx context.Context, cfg config.RedisConfig) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	return New(client), nil
}

// Load returns the payload stored under key or domain.ErrNotFound.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("state %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("state %s: %w", key, err)
	}
	return payload, nil
}

// Save overwrites key with payload.
func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	if err := b.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("state %s: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (b *Backend) Close() error {
	return b.client.Close()
}
