package scan

import (
	"fmt"
	"regexp"
	"sync"
)

// DefaultPattern matches the end of a line, or the first character that is
// neither whitespace nor a box-drawing character (U+2500 through U+257F).
// It auto-detects the value boundary both in plain-indented text and in
// trees that already carry box-drawing connectors.
const DefaultPattern = `$|[^\s\x{2500}-\x{257F}]`

//nolint:gochecknoglobals // Lazily-built shared default matcher.
var (
	defaultMatcher     *Matcher
	defaultMatcherOnce sync.Once
)

// Matcher locates where a line's value begins. The zero policy takes the
// first match and starts the value at the match itself; Last and After
// switch to the last match on the line and to the position just past the
// match, respectively.
type Matcher struct {
	re    *regexp.Regexp
	last  bool
	after bool
}

// NewMatcher compiles pattern into a Matcher with the given policy flags.
func NewMatcher(pattern string, last, after bool) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile match pattern: %w", err)
	}
	return &Matcher{re: re, last: last, after: after}, nil
}

// DefaultMatcher returns the shared matcher for DefaultPattern.
func DefaultMatcher() *Matcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = &Matcher{re: regexp.MustCompile(DefaultPattern)}
	})
	return defaultMatcher
}

// valueStart returns the offset within line (terminator already stripped)
// where the value begins. A line with no match yields offset 0.
func (m *Matcher) valueStart(line string) int {
	var loc []int
	if m.last {
		if all := m.re.FindAllStringIndex(line, -1); len(all) > 0 {
			loc = all[len(all)-1]
		}
	} else {
		loc = m.re.FindStringIndex(line)
	}
	if loc == nil {
		return 0
	}
	if m.after {
		return loc[1]
	}
	return loc[0]
}
