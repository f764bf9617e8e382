package cli

import (
	"fmt"

	"github.com/glorpus-work/depcache/internal/logger"
	"github.com/glorpus-work/depcache/pkg/cache"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the package cache",
		Long:  "Clean, show information about, and manage the package cache",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the package cache",
		Long:  "Remove all cached packages to free up disk space",
		RunE:  runCacheClean,
	}
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display information about the package cache",
		RunE:  runCacheInfo,
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the cache directory",
		RunE:  runCacheDir,
	}
}

func runCacheClean(*cobra.Command, []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	freed, err := store.Clean()
	if err != nil {
		return err
	}

	logger.Info("Cache cleaning completed", logrus.Fields{"freed": formatBytes(freed)})
	return nil
}

func runCacheInfo(*cobra.Command, []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	info, err := store.GetInfo()
	if err != nil {
		return err
	}

	fmt.Printf("Cache Directory: %s\n", info.Directory)
	fmt.Printf("Total Size: %s\n", formatBytes(info.TotalSize))
	fmt.Printf("Files: %d\n", info.Files)
	fmt.Printf("Packages: %d\n", info.Packages)

	return nil
}

func runCacheDir(*cobra.Command, []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	fmt.Println(store.Root())
	return nil
}

func openStore() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Settings.CacheDir != "" {
		return cache.NewStore(cfg.Settings.CacheDir)
	}
	return cache.NewDefaultStore()
}
