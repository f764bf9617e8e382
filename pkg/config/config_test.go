package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/depcache/pkg/errors"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConcurrency, cfg.Settings.Concurrency)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  cache_dir: /var/cache/depcache
  concurrency: 2
  production: true
  registry_url: https://registry.example.com
  http_timeout: 10s
  log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/depcache", cfg.Settings.CacheDir)
	assert.Equal(t, 2, cfg.Settings.Concurrency)
	assert.True(t, cfg.Settings.Production)
	assert.Equal(t, "https://registry.example.com", cfg.Settings.RegistryURL)
	assert.Equal(t, 10*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: ["), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.Concurrency = 3
	cfg.Settings.Lockfile = true
	require.NoError(t, cfg.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Settings.Concurrency)
	assert.True(t, reloaded.Settings.Lockfile)
}
