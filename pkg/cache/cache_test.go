package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageEntry(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestKeyPath_Injective(t *testing.T) {
	root := "/cache"
	keys := []Key{
		{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "46"},
		{Name: "lodash", Version: "3.10.1", Arch: "arm64", ABI: "46"},
		{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "47"},
		{Name: "lodash", Version: "3.10.0", Arch: "amd64", ABI: "46"},
		{Name: "underscore", Version: "3.10.1", Arch: "amd64", ABI: "46"},
	}

	seen := make(map[string]Key, len(keys))
	for _, key := range keys {
		path := key.Path(root)
		if prev, dup := seen[path]; dup {
			t.Fatalf("keys %v and %v collide at %s", prev, key, path)
		}
		seen[path] = key
	}
}

func TestKeyPath_Segments(t *testing.T) {
	key := Key{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "46"}
	assert.Equal(t, filepath.Join("/cache", "lodash", "3.10.1", "amd64", "46"), key.Path("/cache"))
}

func TestNewStore_EmptyRoot(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestStore_CommitAndExists(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key := Key{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "46"}
	assert.False(t, store.Exists(key))

	staged := stageEntry(t, map[string]string{"lodash/index.js": "module.exports = {}"})
	require.NoError(t, store.Commit(staged, key))

	assert.True(t, store.Exists(key))
	assert.FileExists(t, filepath.Join(key.Path(store.Root()), "lodash", "index.js"))
	// The staged contents were moved, not copied.
	assert.NoDirExists(t, staged)
}

func TestStore_CommitIdempotentOnSameKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key := Key{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "46"}
	first := stageEntry(t, map[string]string{"lodash/index.js": "first"})
	require.NoError(t, store.Commit(first, key))

	// A second commit of the same key must be a no-op, not an error, and
	// must leave the original entry untouched.
	second := stageEntry(t, map[string]string{"lodash/index.js": "second"})
	require.NoError(t, store.Commit(second, key))

	data, err := os.ReadFile(filepath.Join(key.Path(store.Root()), "lodash", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestStore_ArchAndABIIsolate(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	keyA := Key{Name: "native", Version: "1.0.0", Arch: "amd64", ABI: "46"}
	keyB := Key{Name: "native", Version: "1.0.0", Arch: "arm64", ABI: "47"}

	require.NoError(t, store.Commit(stageEntry(t, map[string]string{"native/binding.node": "amd64"}), keyA))
	require.NoError(t, store.Commit(stageEntry(t, map[string]string{"native/binding.node": "arm64"}), keyB))

	dataA, err := os.ReadFile(filepath.Join(keyA.Path(store.Root()), "native", "binding.node"))
	require.NoError(t, err)
	dataB, err := os.ReadFile(filepath.Join(keyB.Path(store.Root()), "native", "binding.node"))
	require.NoError(t, err)
	assert.Equal(t, "amd64", string(dataA))
	assert.Equal(t, "arm64", string(dataB))
}

func TestStore_ReadInto(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	key := Key{Name: "lodash", Version: "3.10.1", Arch: "amd64", ABI: "46"}
	require.NoError(t, store.Commit(stageEntry(t, map[string]string{"lodash/index.js": "x"}), key))

	dest := filepath.Join(t.TempDir(), "node_modules")
	require.NoError(t, store.ReadInto(key, dest))

	assert.FileExists(t, filepath.Join(dest, "lodash", "index.js"))
	// Reading out must not consume the entry.
	assert.True(t, store.Exists(key))
}

func TestStore_GetInfoAndClean(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	keyA := Key{Name: "a", Version: "1.0.0", Arch: "amd64", ABI: "46"}
	keyB := Key{Name: "b", Version: "2.0.0", Arch: "amd64", ABI: "46"}
	require.NoError(t, store.Commit(stageEntry(t, map[string]string{"a/one.js": "11"}), keyA))
	require.NoError(t, store.Commit(stageEntry(t, map[string]string{"b/two.js": "2222"}), keyB))

	info, err := store.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, 2, info.Packages)
	assert.Equal(t, 2, info.Files)
	assert.Equal(t, int64(6), info.TotalSize)

	freed, err := store.Clean()
	require.NoError(t, err)
	assert.Equal(t, int64(6), freed)
	assert.False(t, store.Exists(keyA))
	assert.DirExists(t, store.Root())
}
