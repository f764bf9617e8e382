package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSatisfying(t *testing.T) {
	matcher := NewMatcher()

	tests := []struct {
		name       string
		candidates []string
		rangeStr   string
		expected   string
	}{
		{
			name:       "caret range picks highest in major",
			candidates: []string{"3.9.0", "3.10.0", "3.10.1"},
			rangeStr:   "^3.0.0",
			expected:   "3.10.1",
		},
		{
			name:       "range capped by latest",
			candidates: []string{"3.9.0", "3.10.0", "3.10.1", "4.0.0"},
			rangeStr:   "^3.0.0 <=3.10.1",
			expected:   "3.10.1",
		},
		{
			name:       "tilde range stays in minor",
			candidates: []string{"1.2.0", "1.2.9", "1.3.0"},
			rangeStr:   "~1.2.0",
			expected:   "1.2.9",
		},
		{
			name:       "no candidate satisfies",
			candidates: []string{"1.0.0", "1.1.0"},
			rangeStr:   "^2.0.0",
			expected:   "",
		},
		{
			name:       "unparsable range",
			candidates: []string{"1.0.0"},
			rangeStr:   "not-a-range",
			expected:   "",
		},
		{
			name:       "unparsable candidates skipped",
			candidates: []string{"garbage", "2.0.0"},
			rangeStr:   ">=1.0.0",
			expected:   "2.0.0",
		},
		{
			name:       "unordered candidates",
			candidates: []string{"2.5.0", "2.1.0", "2.9.3", "2.0.0"},
			rangeStr:   "^2.0.0",
			expected:   "2.9.3",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, matcher.MaxSatisfying(testCase.candidates, testCase.rangeStr))
		})
	}
}

func TestIsExact(t *testing.T) {
	matcher := NewMatcher()

	assert.True(t, matcher.IsExact("1.2.3"))
	assert.True(t, matcher.IsExact("1.2.3-rc.1"))
	assert.False(t, matcher.IsExact("^1.2.3"))
	assert.False(t, matcher.IsExact("1.2"))
	assert.False(t, matcher.IsExact("*"))
	assert.False(t, matcher.IsExact("latest"))
}

func TestSort(t *testing.T) {
	versions := []string{"3.10.1", "3.9.0", "3.10.0"}
	Sort(versions)
	assert.Equal(t, []string{"3.9.0", "3.10.0", "3.10.1"}, versions)
}
