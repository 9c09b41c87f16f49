package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "id-1", "payload", time.Hour))

	got, err := store.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	require.NoError(t, store.Delete(ctx, "id-1"))

	_, err = store.Get(ctx, "id-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "id-1", "payload", -time.Second))

	_, err := store.Get(ctx, "id-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
