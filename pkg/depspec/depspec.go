// Package depspec classifies raw dependency version specifiers and extracts
// the pieces resolution needs. Everything here is pure: no network, no
// filesystem.
package depspec

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/model"
)

// gitPrefixes are the URL schemes that mark a spec as git-referenced.
var gitPrefixes = []string{
	"git://",
	"git+ssh://",
	"git+http://",
	"git+https://",
	"git+file://",
}

// IsGitSpec reports whether rawSpec points at a git repository.
func IsGitSpec(rawSpec string) bool {
	for _, prefix := range gitPrefixes {
		if strings.HasPrefix(rawSpec, prefix) {
			return true
		}
	}
	return false
}

// Classify inspects a raw version specifier and reports how resolution must
// proceed: git specs resolve through their #fragment, exact versions are
// usable verbatim, everything else is a range needing registry metadata.
func Classify(rawSpec string) model.Kind {
	if IsGitSpec(rawSpec) {
		return model.GitRef
	}
	if isExactVersion(rawSpec) {
		return model.ExactVersion
	}
	return model.SemverRange
}

// isExactVersion reports whether rawSpec is a single concrete version with
// no range operators or wildcards.
func isExactVersion(rawSpec string) bool {
	if rawSpec == "" || rawSpec == "*" || strings.EqualFold(rawSpec, "latest") {
		return false
	}
	_, err := semver.StrictNewVersion(rawSpec)
	return err == nil
}

// GitFragment extracts the version pinned by the #fragment of a git spec.
// Without a fragment the dependency has no concrete version to cache under,
// so its absence is a hard resolution failure, never a silent fallback.
func GitFragment(rawSpec string) (string, error) {
	_, fragment, ok := strings.Cut(rawSpec, "#")
	if !ok || fragment == "" {
		return "", errors.Wrapf(errors.ErrMalformedGitSpec,
			"%q has no version fragment, append #<version> to the spec", rawSpec)
	}
	return fragment, nil
}

// CloneURL returns the clone URL of a git spec with the fragment and the
// git+ scheme wrapper stripped.
func CloneURL(rawSpec string) string {
	url, _, _ := strings.Cut(rawSpec, "#")
	return strings.TrimPrefix(url, "git+")
}
