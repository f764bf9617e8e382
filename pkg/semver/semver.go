// Package semver adapts version range matching for the install path. Ranges
// use the npm-style grammar (^, ~, comparison operators, space-separated
// AND) as implemented by the Masterminds constraint parser.
package semver

import (
	"sort"

	mmsemver "github.com/Masterminds/semver/v3"
)

// Matcher matches concrete versions against range specifiers.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// MaxSatisfying returns the highest of candidates that satisfies rangeStr,
// or "" when none does or the range cannot be parsed. Candidates that are
// not parseable versions are skipped.
func (Matcher) MaxSatisfying(candidates []string, rangeStr string) string {
	constraint, err := mmsemver.NewConstraint(rangeStr)
	if err != nil {
		return ""
	}

	var best *mmsemver.Version
	bestRaw := ""
	for _, candidate := range candidates {
		v, err := mmsemver.NewVersion(candidate)
		if err != nil {
			continue
		}
		if !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = candidate
		}
	}
	return bestRaw
}

// IsExact reports whether s is a single concrete version rather than a
// range.
func (Matcher) IsExact(s string) bool {
	_, err := mmsemver.StrictNewVersion(s)
	return err == nil
}

// Sort orders versions ascending. Entries that do not parse as versions sort
// before everything else, in their original relative order.
func Sort(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, erri := mmsemver.NewVersion(versions[i])
		vj, errj := mmsemver.NewVersion(versions[j])
		if erri != nil || errj != nil {
			return erri != nil && errj == nil
		}
		return vi.LessThan(vj)
	})
}
