package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_GetSet(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	// Missing key
	_, ok, err := store.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	// Write then read back
	require.NoError(t, store.Set(ctx, "k", `{"hello":"world"}`))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"hello":"world"}`, value)

	// Overwrite replaces
	require.NoError(t, store.Set(ctx, "k", "[]"))
	value, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", value)
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "spendwise.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "spendwise.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}
