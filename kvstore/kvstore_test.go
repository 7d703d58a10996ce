package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("theme")
	assert.False(t, ok)

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("tour_completed", "true"))

	value, ok := store.Get("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	assert.Equal(t, []string{"theme", "tour_completed"}, store.Keys())

	require.NoError(t, store.Remove("theme"))
	_, ok = store.Get("theme")
	assert.False(t, ok)
}

func TestFileStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("locale", "ar"))
	require.NoError(t, store.Remove("locale"))

	// a fresh store from the same path sees the saved state
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok := reopened.Get("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	_, ok = reopened.Get("locale")
	assert.False(t, ok)
	assert.Equal(t, []string{"theme"}, reopened.Keys())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}
