package seed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/heartmarshall/hearthhub/internal/adapter/memory"
	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/state/property"
	"github.com/heartmarshall/hearthhub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(slog.Default(), memory.New(), store.Config{})
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	n, err := New(slog.Default(), s, Config{}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items := s.ListProperties()
	require.Len(t, items, 3)
	// prepended, so the last sample is first
	assert.Equal(t, "Luxury Beach Villa", items[0].Title)
	assert.Equal(t, "Modern Downtown Apartment", items[2].Title)
	for _, p := range items {
		assert.Equal(t, property.DefaultOwnerID, p.OwnerID)
		assert.Equal(t, domain.PropertyStatusApproved, p.Status)
	}
	assert.Empty(t, s.Notifications(), "seeding emits no notifications")
}

func TestRun_SkipsNonEmptyStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	s.CreateProperty(ctx, domain.NewProperty{PropertyFormData: domain.PropertyFormData{Title: "Existing"}})

	n, err := New(slog.Default(), s, Config{}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, s.ListProperties(), 1)
}

func TestRun_Reset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	s.CreateProperty(ctx, domain.NewProperty{PropertyFormData: domain.PropertyFormData{Title: "Existing"}})

	n, err := New(slog.Default(), s, Config{Reset: true, OwnerID: "admin"}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for _, p := range s.ListProperties() {
		assert.Equal(t, "admin", p.OwnerID)
	}
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	backend := memory.New()
	s := store.New(slog.Default(), backend, store.Config{})

	n, err := New(slog.Default(), s, Config{DryRun: true}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, s.ListProperties())

	_, err = backend.Load(context.Background(), store.DefaultKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner_id: admin\nreset: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.OwnerID)
	assert.True(t, cfg.Reset)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SEEDER_DRY_RUN", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}
