// Package checks implements the repository hygiene checks.
//
// Each check walks the tree (or the metadata directories) of a
// report.RunContext and records violations on it. Run returns an error only
// when the run cannot continue, which is a fatal I/O failure; everything
// that concerns a single file is reported as a violation.
//
// Checks:
//   - sensitive: files that must never be committed (secrets, keys, IDE state)
//   - size: oversized files and videos
//   - whitespace: trailing whitespace and final newline, fixed in place
//   - frontmatter: required header fields in agents/skills/commands
//   - consistency: unique names and recommended fields across those directories
package checks
