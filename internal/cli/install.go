package cli

import (
	"fmt"
	"os"

	"github.com/glorpus-work/depcache/internal/logger"
	"github.com/glorpus-work/depcache/pkg/cache"
	"github.com/glorpus-work/depcache/pkg/hook"
	"github.com/glorpus-work/depcache/pkg/manifest"
	"github.com/glorpus-work/depcache/pkg/orchestrator"
	"github.com/glorpus-work/depcache/pkg/platform"
	"github.com/glorpus-work/depcache/pkg/registry"
	"github.com/glorpus-work/depcache/pkg/semver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		dir         string
		cacheDir    string
		concurrency int
		production  bool
		lockfile    bool
		registryURL string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install project dependencies",
		Long: `Install the dependencies declared in the project manifest.
Packages already present in the local cache are copied into place without
touching the network; everything else is fetched, cached, and installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, dir, cacheDir, concurrency, production, lockfile, registryURL)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "project directory (defaults to the working directory)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "package cache directory (defaults to config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of parallel installs (0=auto)")
	cmd.Flags().BoolVar(&production, "production", false, "skip devDependencies")
	cmd.Flags().BoolVar(&lockfile, "lockfile", true, "honor npm-shrinkwrap.json / package-lock.json pins")
	cmd.Flags().StringVar(&registryURL, "registry", "", "registry base URL (defaults to config)")

	return cmd
}

func runInstall(cmd *cobra.Command, dir, cacheDir string, concurrency int, production, lockfile bool, registryURL string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
	}
	if cacheDir == "" {
		cacheDir = cfg.Settings.CacheDir
	}
	if concurrency == 0 {
		concurrency = cfg.Settings.Concurrency
	}
	if registryURL == "" {
		registryURL = cfg.Settings.RegistryURL
	}
	if !cmd.Flags().Changed("lockfile") {
		lockfile = cfg.Settings.Lockfile
	}
	if !production {
		production = cfg.Settings.Production
	}

	deps, err := manifest.Load(dir, manifest.Options{ProductionOnly: production, Lockfile: lockfile})
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	if len(deps) == 0 {
		logger.Info("Nothing to install")
		return nil
	}

	var store *cache.Store
	if cacheDir != "" {
		store, err = cache.NewStore(cacheDir)
	} else {
		store, err = cache.NewDefaultStore()
	}
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	client := registry.NewClient(registryURL, cfg.Settings.HTTPTimeout)

	hooks, err := hook.LoadFromProject(dir)
	if err != nil {
		return fmt.Errorf("failed to load hooks: %w", err)
	}

	hookCtx := hook.Context{ProjectDir: dir, CacheDir: store.Root()}
	if hooks.HasScript(hook.PreInstall) {
		if err := hooks.Execute(hook.PreInstall, hookCtx); err != nil {
			return fmt.Errorf("pre-install hook failed: %w", err)
		}
	}

	progress := orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		if e.Name != "" {
			logger.Debug(e.Msg, logrus.Fields{"phase": e.Phase, "package": e.Name})
		} else {
			logger.Debug(e.Msg, logrus.Fields{"phase": e.Phase})
		}
	}}

	orch := orchestrator.New(client, semver.NewMatcher(), store, progress)

	opts := orchestrator.Options{
		Dir:            dir,
		Concurrency:    concurrency,
		Arch:           platform.Arch(),
		ABI:            platform.ABIVersion(),
		RuntimeVersion: platform.RuntimeVersion(),
	}

	result, err := orch.Install(cmd.Context(), deps, opts)
	if err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}

	for name, mod := range result.Modules {
		logger.Info("Installed", logrus.Fields{"package": name, "version": mod.Version})
	}
	logger.Info("Install complete", logrus.Fields{
		"packages": len(result.Modules),
		"arch":     result.Arch,
		"abi":      result.ABIVersion,
	})

	if hooks.HasScript(hook.PostInstall) {
		hookCtx.Modules = len(result.Modules)
		if err := hooks.Execute(hook.PostInstall, hookCtx); err != nil {
			return fmt.Errorf("post-install hook failed: %w", err)
		}
	}

	return nil
}
