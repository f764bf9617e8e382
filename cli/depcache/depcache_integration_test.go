//go:build integration

package main

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a minimal config file pointing the cache at a temp
// directory and returns its path.
func writeConfig(t *testing.T, root string) (cfgPath, cacheDir string) {
	t.Helper()
	cfgPath = filepath.Join(root, "config.yaml")
	cacheDir = filepath.Join(root, "cache")

	yamlContent := `settings:
  cache_dir: ` + cacheDir + `
  http_timeout: 5s
  concurrency: 2
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o600))
	return cfgPath, cacheDir
}

// runCLI executes the root command with the given args and returns captured
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	return buf.String(), execErr
}

func packRegistryTarball(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: "package/" + name,
			Mode: 0o644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "depcache version")
}

func TestCacheCommands(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath, cacheDir := writeConfig(t, tempDir)

	output, err := runCLI(t, "--config", cfgPath, "cache", "dir")
	require.NoError(t, err)
	assert.Contains(t, output, cacheDir)

	output, err = runCLI(t, "--config", cfgPath, "cache", "info")
	require.NoError(t, err)
	assert.Contains(t, output, "Cache Directory:")
	assert.Contains(t, output, "Total Size:")
	assert.Contains(t, output, "Packages:")

	_, err = runCLI(t, "--config", cfgPath, "cache", "clean")
	require.NoError(t, err)
}

func TestInstall_EndToEndWithWarmCache(t *testing.T) {
	t.Setenv("DEPCACHE_ABI", "115")

	tempDir := t.TempDir()
	cfgPath, _ := writeConfig(t, tempDir)

	tarball := packRegistryTarball(t, map[string]string{
		"index.js":     "module.exports = s => s",
		"package.json": `{"name":"left-pad","version":"1.3.0"}`,
	})
	shasum := sha1.Sum(tarball) //nolint:gosec

	var downloads atomic.Int64
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/left-pad", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{
			"dist-tags": {"latest": "1.3.0"},
			"versions": {
				"1.2.0": {"dist": {"tarball": "%[1]s/left-pad/-/left-pad-1.2.0.tgz"}},
				"1.3.0": {"dist": {"tarball": "%[1]s/left-pad/-/left-pad-1.3.0.tgz", "shasum": "%[2]x"}}
			}
		}`, server.URL, shasum)
	})
	mux.HandleFunc("/left-pad/-/left-pad-1.3.0.tgz", func(w http.ResponseWriter, _ *http.Request) {
		downloads.Add(1)
		_, _ = w.Write(tarball)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	newProject := func(name string) string {
		dir := filepath.Join(tempDir, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		manifest := `{"name":"demo","dependencies":{"left-pad":"^1.0.0"}}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0o644))
		return dir
	}

	// Cold run fetches from the registry.
	projectA := newProject("a")
	_, err := runCLI(t, "--config", cfgPath, "install", "--dir", projectA, "--registry", server.URL)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(projectA, "node_modules", "left-pad", "index.js"))
	assert.EqualValues(t, 1, downloads.Load())

	// A second project with the same dependency installs from the cache.
	projectB := newProject("b")
	_, err = runCLI(t, "--config", cfgPath, "install", "--dir", projectB, "--registry", server.URL)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(projectB, "node_modules", "left-pad", "index.js"))
	assert.EqualValues(t, 1, downloads.Load(), "warm cache must not re-download")
}
