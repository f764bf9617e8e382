// Package model provides the data types shared by the depcache install path:
// declared and resolved dependencies, registry metadata and the aggregate
// install result.
package model

// Kind classifies how a dependency's raw version spec must be resolved.
type Kind int

const (
	// ExactVersion means the spec is a concrete version usable as-is.
	ExactVersion Kind = iota
	// SemverRange means the spec needs registry metadata before a concrete
	// version is known. The literal wildcards "*" and "latest" belong here.
	SemverRange
	// GitRef means the spec is a git URL pinned by a #fragment.
	GitRef
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case ExactVersion:
		return "exact"
	case SemverRange:
		return "range"
	case GitRef:
		return "git"
	default:
		return "unknown"
	}
}

// Dependency is one declared dependency from the project manifest. Immutable
// after load.
type Dependency struct {
	Name    string
	RawSpec string
}

// ResolvedDependency is a Dependency whose spec has been narrowed to a
// concrete, comparable version string. A cache key can only be built from a
// resolved dependency.
type ResolvedDependency struct {
	Dependency
	ResolvedVersion string
	Kind            Kind
}

// PackageInfo is the registry's view of a package: its latest released
// version and all known versions in ascending order.
type PackageInfo struct {
	Version  string
	Versions []string
}

// Module describes one installed module in an InstallResult.
type Module struct {
	Version string
	Path    string
}

// InstallResult aggregates the outcome of a successful install run. It is
// owned exclusively by the in-flight run and frozen on completion.
type InstallResult struct {
	RuntimeVersion string
	Arch           string
	ABIVersion     string
	Modules        map[string]Module
}
