// Package rules holds the fixed rule tables every check evaluates: excluded
// directory names, sensitive-file patterns, size categories, the whitespace
// include set and the metadata directories.
//
// Pattern matching goes through a single Matcher capability with three
// variants, evaluated uniformly:
//   - PatternMatcher: regular expression
//   - SubstringMatcher: case-insensitive substring
//   - GlobMatcher: doublestar path glob (supports **)
//
// Nothing here is configurable at runtime.
package rules
