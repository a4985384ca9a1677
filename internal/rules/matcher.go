package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a string (a file name or a relative path) matches.
type Matcher interface {
	Match(s string) bool
	fmt.Stringer
}

// PatternMatcher matches with a regular expression.
type PatternMatcher struct {
	re *regexp.Regexp
}

// Pattern compiles expr into a PatternMatcher. Panics on an invalid
// expression; patterns are package constants.
func Pattern(expr string) PatternMatcher {
	return PatternMatcher{re: regexp.MustCompile(expr)}
}

func (m PatternMatcher) Match(s string) bool { return m.re.MatchString(s) }
func (m PatternMatcher) String() string      { return "/" + m.re.String() + "/" }

// SubstringMatcher matches when the fragment occurs anywhere, ignoring case.
type SubstringMatcher struct {
	fragment string
}

// Substring creates a case-insensitive SubstringMatcher.
func Substring(fragment string) SubstringMatcher {
	return SubstringMatcher{fragment: strings.ToLower(fragment)}
}

func (m SubstringMatcher) Match(s string) bool {
	return strings.Contains(strings.ToLower(s), m.fragment)
}
func (m SubstringMatcher) String() string { return "*" + m.fragment + "*" }

// GlobMatcher matches slash-separated paths against a doublestar pattern.
type GlobMatcher struct {
	pattern string
}

// Glob creates a GlobMatcher. Panics if the pattern is malformed.
func Glob(pattern string) GlobMatcher {
	if !doublestar.ValidatePattern(pattern) {
		panic(fmt.Sprintf("invalid glob pattern %q", pattern))
	}
	return GlobMatcher{pattern: pattern}
}

func (m GlobMatcher) Match(s string) bool {
	ok, err := doublestar.Match(m.pattern, s)
	return err == nil && ok
}
func (m GlobMatcher) String() string { return m.pattern }

// Field selects which part of a file a Rule's matcher is applied to.
type Field int

const (
	FieldName Field = iota
	FieldRelativePath
)

// Rule pairs a matcher with the field it inspects and a short label used in
// violation messages.
type Rule struct {
	Label   string
	Field   Field
	Matcher Matcher
}

// Matches evaluates the rule against a file's base name and relative path.
func (r Rule) Matches(name, relPath string) bool {
	if r.Field == FieldRelativePath {
		return r.Matcher.Match(relPath)
	}
	return r.Matcher.Match(name)
}

// FirstMatch returns the first rule matching the file, if any.
func FirstMatch(rules []Rule, name, relPath string) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(name, relPath) {
			return r, true
		}
	}
	return Rule{}, false
}
