package cache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeInto_SharedSubdirectoryUnion(t *testing.T) {
	// Two packages each ship a top-level ".bin" directory. Merging both into
	// one destination must yield the union of their contents.
	pkgA := stageEntry(t, map[string]string{
		"a/index.js":  "a",
		".bin/a-tool": "#!/bin/sh a",
	})
	pkgB := stageEntry(t, map[string]string{
		"b/index.js":  "b",
		".bin/b-tool": "#!/bin/sh b",
	})

	dest := filepath.Join(t.TempDir(), "node_modules")
	require.NoError(t, MergeInto(pkgA, dest))
	require.NoError(t, MergeInto(pkgB, dest))

	assert.FileExists(t, filepath.Join(dest, "a", "index.js"))
	assert.FileExists(t, filepath.Join(dest, "b", "index.js"))
	assert.FileExists(t, filepath.Join(dest, ".bin", "a-tool"))
	assert.FileExists(t, filepath.Join(dest, ".bin", "b-tool"))
}

func TestMergeInto_ConcurrentMerges(t *testing.T) {
	sources := make([]string, 8)
	for i := range sources {
		name := string(rune('a' + i))
		sources[i] = stageEntry(t, map[string]string{
			name + "/index.js": name,
			".bin/" + name:     name,
		})
	}

	dest := filepath.Join(t.TempDir(), "node_modules")
	var wg sync.WaitGroup
	errs := make([]error, len(sources))
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			errs[i] = MergeInto(src, dest)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "merge %d failed", i)
	}
	for i := range sources {
		name := string(rune('a' + i))
		assert.FileExists(t, filepath.Join(dest, name, "index.js"))
		assert.FileExists(t, filepath.Join(dest, ".bin", name))
	}
}

func TestMergeInto_TopLevelFiles(t *testing.T) {
	src := stageEntry(t, map[string]string{"README.md": "docs"})
	dest := t.TempDir()

	require.NoError(t, MergeInto(src, dest))

	data, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "docs", string(data))
}

func TestMergeInto_MissingSource(t *testing.T) {
	err := MergeInto(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(t, err)
}
