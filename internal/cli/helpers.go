package cli

import (
	"fmt"

	"github.com/glorpus-work/depcache/internal/logger"
	"github.com/glorpus-work/depcache/pkg/config"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	noColor := NoColor != nil && *NoColor
	logger.InitLogger(cfg.Settings.LogLevel, noColor)

	return cfg, nil
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
