package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glorpus-work/depcache/pkg/cache"
	"github.com/glorpus-work/depcache/pkg/depspec"
	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/model"
	"github.com/glorpus-work/depcache/pkg/registry"
)

// Orchestrator drives cache-aware installs. Each declared dependency is
// classified, resolved to a concrete version, served from the cache when its
// key exists and fetched into the cache otherwise. Cache hits and fresh
// installs merge into the destination through the same path, so the
// destination is always populated from the committed cache entry.
//
// The first dependency to fail decides the run's error, but in-flight
// siblings are not cancelled: they finish or fail independently. Completed
// merges stay on disk on a failed run; a re-run is idempotent because warm
// keys skip straight to the merge.
type Orchestrator struct {
	Resolver Resolver
	Matcher  VersionMatcher
	Store    Store
	Hooks    Hooks
}

// New constructs an Orchestrator from existing collaborators. Hooks can be
// zero if no event handling is needed.
func New(resolver Resolver, matcher VersionMatcher, store Store, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Resolver: resolver,
		Matcher:  matcher,
		Store:    store,
		Hooks:    hooks,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// outcome is one worker's report for one dependency.
type outcome struct {
	name   string
	module model.Module
	err    error
}

// Install processes deps under a bounded worker pool and returns the
// aggregate result. On failure no partial result is returned, but
// dependencies that already merged stay on disk.
func (o *Orchestrator) Install(ctx context.Context, deps []model.Dependency, opts Options) (*model.InstallResult, error) {
	if o.Resolver == nil {
		return nil, fmt.Errorf("package resolver is not configured")
	}
	if o.Matcher == nil {
		return nil, fmt.Errorf("version matcher is not configured")
	}
	if o.Store == nil {
		return nil, fmt.Errorf("cache store is not configured")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	destRoot := filepath.Join(opts.Dir, registry.ModulesDir)

	tasks := make(chan model.Dependency)
	outcomes := make(chan outcome, len(deps))
	var wg sync.WaitGroup
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dep := range tasks {
				module, err := o.installOne(ctx, dep, destRoot, opts)
				outcomes <- outcome{name: dep.Name, module: module, err: err}
			}
		}()
	}
	for _, dep := range deps {
		tasks <- dep
	}
	close(tasks)
	wg.Wait()
	close(outcomes)

	// Workers report through the channel and the result is assembled here,
	// after pool completion, so no map is shared across goroutines.
	result := &model.InstallResult{
		RuntimeVersion: opts.RuntimeVersion,
		Arch:           opts.Arch,
		ABIVersion:     opts.ABI,
		Modules:        make(map[string]model.Module, len(deps)),
	}
	var firstErr error
	for out := range outcomes {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		result.Modules[out.name] = out.module
	}
	if firstErr != nil {
		emit(o.Hooks, Event{Phase: "error", Msg: firstErr.Error()})
		return nil, firstErr
	}

	emit(o.Hooks, Event{Phase: "done", Msg: fmt.Sprintf("%d modules", len(result.Modules))})
	return result, nil
}

// installOne walks a single dependency through classify → resolve → cache →
// merge. It is the unit of work one pool worker executes.
func (o *Orchestrator) installOne(ctx context.Context, dep model.Dependency, destRoot string, opts Options) (model.Module, error) {
	kind := depspec.Classify(dep.RawSpec)

	resolved, err := o.concreteVersion(dep, kind)
	if err != nil {
		return model.Module{}, err
	}

	// Fast path: an exact or git-pinned spec already names a concrete
	// version, so a warm cache skips registry and network entirely.
	if resolved != "" {
		key := o.key(dep.Name, resolved, opts)
		if o.Store.Exists(key) {
			emit(o.Hooks, Event{Phase: "cache-hit", Name: dep.Name, Msg: resolved})
			return o.merge(dep.Name, resolved, key, destRoot)
		}
	}

	if resolved == "" {
		if resolved, err = o.resolveRange(ctx, dep); err != nil {
			return model.Module{}, err
		}
	}

	rdep := model.ResolvedDependency{Dependency: dep, ResolvedVersion: resolved, Kind: kind}

	// Second cache check: range resolution may have landed on a key that
	// exists even though no fast path applied.
	key := o.key(dep.Name, resolved, opts)
	if !o.Store.Exists(key) {
		if err := o.fetchAndCommit(ctx, rdep, key); err != nil {
			return model.Module{}, err
		}
	} else {
		emit(o.Hooks, Event{Phase: "cache-hit", Name: dep.Name, Msg: resolved})
	}

	return o.merge(dep.Name, resolved, key, destRoot)
}

// concreteVersion returns the version a spec pins without registry help, or
// "" when registry metadata is required.
func (o *Orchestrator) concreteVersion(dep model.Dependency, kind model.Kind) (string, error) {
	switch kind {
	case model.GitRef:
		return depspec.GitFragment(dep.RawSpec)
	case model.ExactVersion:
		return dep.RawSpec, nil
	default:
		return "", nil
	}
}

// resolveRange narrows a range spec to a concrete version using registry
// metadata. "*" and "latest" take the registry's reported latest; other
// ranges take the highest version satisfying the range without exceeding
// latest. When nothing satisfies the range the raw spec itself is used, a
// deliberate availability-over-strictness policy rather than an error.
func (o *Orchestrator) resolveRange(ctx context.Context, dep model.Dependency) (string, error) {
	emit(o.Hooks, Event{Phase: "resolving", Name: dep.Name, Msg: dep.RawSpec})

	info, err := o.Resolver.View(ctx, dep.Name)
	if err != nil {
		return "", errors.Wrapf(err, "could not resolve %s@%s", dep.Name, dep.RawSpec)
	}

	if dep.RawSpec == "*" || strings.EqualFold(dep.RawSpec, "latest") {
		return info.Version, nil
	}

	if match := o.Matcher.MaxSatisfying(info.Versions, dep.RawSpec+" <="+info.Version); match != "" {
		return match, nil
	}
	return dep.RawSpec, nil
}

// fetchAndCommit installs a dependency into a fresh scratch area and commits
// the staged tree to the cache. The scratch area is owned exclusively by
// this call and removed on every exit path, committed or not.
func (o *Orchestrator) fetchAndCommit(ctx context.Context, dep model.ResolvedDependency, key cache.Key) error {
	emit(o.Hooks, Event{Phase: "fetching", Name: dep.Name, Msg: dep.ResolvedVersion})

	scratch, err := os.MkdirTemp("", "depcache-")
	if err != nil {
		return errors.Wrapf(errors.ErrFetch, "could not create scratch area for %s: %v", dep.Name, err)
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	if err := o.Resolver.Install(ctx, scratch, dep); err != nil {
		return errors.Wrapf(err, "could not install %s@%s", dep.Name, dep.ResolvedVersion)
	}

	staged := filepath.Join(scratch, registry.ModulesDir)
	if _, err := os.Stat(staged); err != nil {
		return errors.Wrapf(errors.ErrFetch, "installer produced no %s for %s", registry.ModulesDir, dep.Name)
	}

	emit(o.Hooks, Event{Phase: "committing", Name: dep.Name, Msg: key.String()})
	return o.Store.Commit(staged, key)
}

// merge copies the committed cache entry into the destination tree and
// reports the installed module.
func (o *Orchestrator) merge(name, version string, key cache.Key, destRoot string) (model.Module, error) {
	emit(o.Hooks, Event{Phase: "merging", Name: name, Msg: version})
	if err := o.Store.ReadInto(key, destRoot); err != nil {
		return model.Module{}, errors.Wrapf(err, "could not merge %s@%s", name, version)
	}
	return model.Module{Version: version, Path: filepath.Join(destRoot, name)}, nil
}

func (o *Orchestrator) key(name, version string, opts Options) cache.Key {
	return cache.Key{Name: name, Version: version, Arch: opts.Arch, ABI: opts.ABI}
}
