package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	base := fmt.Errorf("base failure")

	wrapped := Wrap(base, "while committing")
	assert.EqualError(t, wrapped, "while committing: base failure")
	assert.True(t, errors.Is(wrapped, base))

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrCacheWrite, "could not commit %s", "lodash@3.10.1")
	assert.EqualError(t, wrapped, "could not commit lodash@3.10.1: failed to write cache entry")
	assert.True(t, errors.Is(wrapped, ErrCacheWrite))

	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidDirectory, ErrManifestMissing, ErrMalformedGitSpec,
		ErrRegistry, ErrFetch, ErrCacheWrite, ErrCopy,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
