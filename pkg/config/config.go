// Package config provides configuration management for depcache. It handles
// loading and validating application settings from YAML configuration files,
// providing sensible defaults while allowing customization per user.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/depcache/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Cache settings
	CacheDir string `yaml:"cache_dir,omitempty"`

	// Install settings
	Concurrency int  `yaml:"concurrency"`
	Production  bool `yaml:"production"`
	Lockfile    bool `yaml:"lockfile"`

	// Network settings
	RegistryURL string        `yaml:"registry_url,omitempty"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultConcurrency is the default ceiling on simultaneous installs.
	DefaultConcurrency = 5

	// DefaultHTTPTimeout is the default timeout for registry requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			Concurrency: DefaultConcurrency,
			HTTPTimeout: DefaultHTTPTimeout,
			LogLevel:    "info",
		},
	}
}

// DefaultConfigPath returns the well-known per-user config file location.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(base, "depcache", "config.yaml"), nil
}

// Load reads a configuration file, layering it over the defaults. A missing
// file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%s: %v", path, err)
	}

	if cfg.Settings.Concurrency <= 0 {
		cfg.Settings.Concurrency = DefaultConcurrency
	}
	if cfg.Settings.HTTPTimeout <= 0 {
		cfg.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigEncode, "%v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}
	return os.WriteFile(path, data, 0o644)
}
