package predicate

import (
	"errors"
	"strings"

	"github.com/gobwas/glob"
)

// NameMatcher matches an entry's basename against a user-supplied pattern.
type NameMatcher interface {
	Match(basename string) bool
	String() string
}

// NewNameMatcher selects Glob or Substring: a pattern containing '*' or
// '?' is treated as a glob, anything else matches as a plain
// case-insensitive substring.
func NewNameMatcher(pattern string) (NameMatcher, error) {
	if pattern == "" {
		return nil, invalidFilter("name", pattern, errors.New("empty pattern"))
	}

	if strings.ContainsAny(pattern, "*?") {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, invalidFilter("name", pattern, err)
		}
		return &globMatcher{raw: pattern, g: g}, nil
	}

	return &substringMatcher{raw: pattern, lower: strings.ToLower(pattern)}, nil
}

// globMatcher matches via a precompiled glob pattern. '*' does not cross
// '/' because the matcher is compiled with '/' as the path separator;
// '**' crosses it, matching gobwas/glob's standard doublestar semantics.
// Matching is always performed against a basename, which by construction
// never contains '/', so the separator only affects how '*' vs '**'
// behave within that single path segment.
type globMatcher struct {
	raw string
	g   glob.Glob
}

func (m *globMatcher) Match(basename string) bool { return m.g.Match(basename) }
func (m *globMatcher) String() string             { return m.raw }

// substringMatcher matches a lowercased pattern as a case-insensitive
// substring of the lowercased basename.
type substringMatcher struct {
	raw   string
	lower string
}

func (m *substringMatcher) Match(basename string) bool {
	return strings.Contains(strings.ToLower(basename), m.lower)
}
func (m *substringMatcher) String() string { return m.raw }
