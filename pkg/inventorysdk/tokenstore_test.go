package inventorysdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	require.Empty(t, store.Get())

	require.NoError(t, store.Set("my-token"))
	require.Equal(t, "my-token", store.Get())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	require.Empty(t, store.Get())
}

func TestFileTokenStoreSurvivesRestart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "token")

	first, err := NewFileTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("persisted-token"))

	// A fresh instance over the same path sees the token.
	second, err := NewFileTokenStore(path)
	require.NoError(t, err)
	require.Equal(t, "persisted-token", second.Get())
}

func TestFileTokenStoreClearWhenEmpty(t *testing.T) {
	t.Parallel()

	store, err := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	require.NoError(t, store.Clear())
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	store := NewMemoryTokenStore()

	var calls int
	cancel := store.Subscribe(func() { calls++ })

	require.NoError(t, store.Set("a"))
	require.NoError(t, store.Set("b"))
	require.NoError(t, store.Clear())
	require.Equal(t, 3, calls)

	cancel()
	require.NoError(t, store.Set("c"))
	require.Equal(t, 3, calls, "cancelled subscriber stops receiving")
}

func TestMemoryTokenStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryTokenStore()
	require.Empty(t, store.Get())

	require.NoError(t, store.Set("tok"))
	require.Equal(t, "tok", store.Get())

	require.NoError(t, store.Clear())
	require.Empty(t, store.Get())
}
