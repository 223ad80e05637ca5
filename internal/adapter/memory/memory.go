// Package memory is an in-process key-value backend. State does not
// survive a restart.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// Backend keeps payloads in a map.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Load returns a copy of the payload stored under key.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	payload, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return bytes.Clone(payload), nil
}

// Save stores a copy of payload under key.
func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = bytes.Clone(payload)
	return nil
}
