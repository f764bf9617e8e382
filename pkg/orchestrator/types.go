//go:generate mockgen -destination=./mocks/orchestrator.go -package mocks . Resolver,VersionMatcher,Store

package orchestrator

import (
	"context"

	"github.com/glorpus-work/depcache/pkg/cache"
	"github.com/glorpus-work/depcache/pkg/model"
)

// Resolver is the package resolver/installer collaborator: registry metadata
// lookup plus fetching one dependency's package tree into a scratch
// directory.
type Resolver interface {
	View(ctx context.Context, name string) (model.PackageInfo, error)
	Install(ctx context.Context, targetDir string, dep model.ResolvedDependency) error
}

// VersionMatcher matches concrete versions against range specifiers.
type VersionMatcher interface {
	MaxSatisfying(candidates []string, rangeStr string) string
	IsExact(s string) bool
}

// Store is the subset of the cache store used by the orchestrator.
type Store interface {
	Exists(key cache.Key) bool
	Commit(srcDir string, key cache.Key) error
	ReadInto(key cache.Key, destRoot string) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // classifying|resolving|cache-hit|fetching|committing|merging|done|error
	Name  string // dependency name
	Msg   string
}

// Hooks carries callbacks for progress events. A nil OnEvent changes
// observability only, never behavior.
type Hooks struct {
	OnEvent func(Event)
}

// DefaultConcurrency bounds in-flight dependencies when Options.Concurrency
// is unset.
const DefaultConcurrency = 5

// Options control an install run.
type Options struct {
	// Dir is the project directory whose module tree is populated.
	Dir string

	// Concurrency is the ceiling on simultaneously in-flight dependencies.
	// 1 degrades to strictly sequential execution; 0 selects
	// DefaultConcurrency.
	Concurrency int

	// Arch and ABI are the host runtime facts baked into every cache key.
	// They are resolved once per run and passed down as constants, never
	// re-read per dependency.
	Arch string
	ABI  string

	// RuntimeVersion is reported on the install result. Informational only.
	RuntimeVersion string
}
