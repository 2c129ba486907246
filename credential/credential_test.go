package credential

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	store := NewFileStore(path)

	got, err := store.Get(APIKeyName)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(APIKeyName, []byte("sk-one")))
	require.NoError(t, store.Set("other", []byte("value")))

	got, err = store.Get(APIKeyName)
	require.NoError(t, err)
	assert.Equal(t, "sk-one", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Delete(APIKeyName))
	got, err = store.Get(APIKeyName)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Get("other")
	require.NoError(t, err)
	assert.Equal(t, "value", string(got))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	_, err := NewFileStore(path).Get(APIKeyName)
	assert.Error(t, err)
}

func TestCacheInitSaveClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.yaml"))
	cache := NewCache(store)
	assert.False(t, cache.Loaded())

	require.NoError(t, cache.Init())
	assert.True(t, cache.Loaded())
	assert.False(t, cache.HasKey())

	require.NoError(t, cache.Save("  sk-abcdef123456  "))
	assert.Equal(t, "sk-abcdef123456", cache.APIKey())
	assert.Equal(t, "********3456", cache.Masked())

	// 新的 Cache 从同一存储加载到相同的值
	reloaded := NewCache(store)
	require.NoError(t, reloaded.Init())
	assert.Equal(t, "sk-abcdef123456", reloaded.APIKey())

	require.NoError(t, cache.Save(""))
	assert.False(t, cache.HasKey())
	require.NoError(t, reloaded.Init())
	assert.False(t, reloaded.HasKey())
}

type failingStore struct{ err error }

func (f failingStore) Set(string, []byte) error   { return f.err }
func (f failingStore) Get(string) ([]byte, error) { return nil, f.err }
func (f failingStore) Delete(string) error        { return f.err }

func TestCacheSurfacesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	cache := NewCache(failingStore{err: boom})
	assert.ErrorIs(t, cache.Init(), boom)
	assert.ErrorIs(t, cache.Save("sk"), boom)
	assert.False(t, cache.HasKey())
}

func TestKeychainStoreCommands(t *testing.T) {
	var calls [][]string
	k := &KeychainStore{run: func(name string, args ...string) ([]byte, error) {
		calls = append(calls, append([]string{name}, args...))
		if args[0] == "find-generic-password" {
			return []byte("sk-keychain\n"), nil
		}
		return nil, nil
	}}

	require.NoError(t, k.Set(APIKeyName, []byte("sk-keychain")))
	got, err := k.Get(APIKeyName)
	require.NoError(t, err)
	assert.Equal(t, "sk-keychain", string(got))

	require.Len(t, calls, 3)
	assert.Equal(t, "delete-generic-password", calls[0][1])
	assert.Equal(t, "add-generic-password", calls[1][1])
	assert.Contains(t, calls[1], keychainService)
}

func TestOpenBackends(t *testing.T) {
	s, err := Open("", filepath.Join(t.TempDir(), "c.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(BackendKeychain, "")
	require.NoError(t, err)
	assert.IsType(t, &KeychainStore{}, s)

	_, err = Open("vault", "")
	assert.Error(t, err)
}
