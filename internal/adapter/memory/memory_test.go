package memory

import (
	"context"
	"testing"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_LoadMissing(t *testing.T) {
	t.Parallel()

	_, err := New().Load(context.Background(), "persist:root")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBackend_SaveThenLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := New()
	payload := []byte(`{"properties":[]}`)

	require.NoError(t, b.Save(ctx, "k", payload))
	payload[0] = 'X'

	got, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"properties":[]}`, string(got))

	got[0] = 'Y'
	again, _ := b.Load(ctx, "k")
	assert.Equal(t, byte('{'), again[0])
}

func TestBackend_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := New()
	require.NoError(t, b.Save(ctx, "k", []byte("1")))
	require.NoError(t, b.Save(ctx, "k", []byte("2")))

	got, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

func TestBackend_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := New()

	assert.ErrorIs(t, b.Save(ctx, "k", []byte("1")), context.Canceled)
	_, err := b.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
