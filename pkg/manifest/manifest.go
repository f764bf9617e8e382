// Package manifest loads the project's declared dependencies from its
// package.json, optionally narrowed by a shrinkwrap or lockfile.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/glorpus-work/depcache/pkg/depspec"
	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/model"
)

// Manifest and lockfile names, in lookup order for the lockfiles.
const (
	FileName       = "package.json"
	ShrinkwrapName = "npm-shrinkwrap.json"
	LockName       = "package-lock.json"
)

// Options control which dependency sets are loaded.
type Options struct {
	// ProductionOnly skips devDependencies.
	ProductionOnly bool
	// Lockfile narrows specs to the versions pinned by npm-shrinkwrap.json
	// or package-lock.json when one is present.
	Lockfile bool
}

type manifestFile struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type lockFile struct {
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

// Load reads the manifest in dir and returns its declared dependencies in
// deterministic name order. A missing dir fails with ErrInvalidDirectory and
// a missing manifest with ErrManifestMissing; both abort an install run
// before any work starts.
func Load(dir string, opts Options) ([]model.Dependency, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrapf(errors.ErrInvalidDirectory, "%s", dir)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrManifestMissing, "no %s in %s", FileName, dir)
	}

	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", FileName)
	}

	specs := make(map[string]string, len(mf.Dependencies)+len(mf.DevDependencies))
	for name, spec := range mf.Dependencies {
		specs[name] = spec
	}
	if !opts.ProductionOnly {
		for name, spec := range mf.DevDependencies {
			specs[name] = spec
		}
	}

	if opts.Lockfile {
		applyLockfile(dir, specs)
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]model.Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, model.Dependency{Name: name, RawSpec: specs[name]})
	}
	return deps, nil
}

// applyLockfile narrows specs to the versions pinned by the first lockfile
// found. Git specs already carry their pin in the fragment and are left
// alone; a broken lockfile is ignored rather than failing the run.
func applyLockfile(dir string, specs map[string]string) {
	for _, name := range []string{ShrinkwrapName, LockName} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var lf lockFile
		if err := json.Unmarshal(data, &lf); err != nil {
			return
		}
		for depName, entry := range lf.Dependencies {
			if entry.Version == "" {
				continue
			}
			if spec, ok := specs[depName]; ok && !depspec.IsGitSpec(spec) {
				specs[depName] = entry.Version
			}
		}
		return
	}
}
