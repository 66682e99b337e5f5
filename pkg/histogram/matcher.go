package histogram

import (
	"regexp"

	"github.com/pkg/errors"
)

// All is the pattern selecting every one-dimensional histogram.
const All = "all"

// Matcher selects histogram names. The pattern must match the whole name,
// so a plain name matches only itself.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewMatcher compiles the pattern.
func NewMatcher(pattern string) (*Matcher, error) {
	if pattern == "" {
		return nil, errors.New("no histogram name has been set")
	}
	if pattern == All {
		return &Matcher{pattern: pattern}, nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid histogram name pattern %q", pattern)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// Match reports whether name is selected.
func (m *Matcher) Match(name string) bool {
	if m.re == nil {
		return true
	}
	return m.re.MatchString(name)
}

// String returns the pattern.
func (m *Matcher) String() string {
	return m.pattern
}
