package repoguard

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, repoguard.ErrViolationsFound) {
//	    // at least one error-level violation was reported
//	}
var (
	// ErrViolationsFound indicates a check finished and reported error-level violations.
	ErrViolationsFound = errors.New("violations found")

	// ErrRootNotFound indicates the scan root does not exist or is not a directory.
	ErrRootNotFound = errors.New("scan root not found")

	// ErrFatalIO indicates the traversal could not continue (unlistable directory,
	// permission denied, broken symlink).
	ErrFatalIO = errors.New("fatal I/O error")

	// ErrUnknownCheck indicates a check name that is not registered.
	ErrUnknownCheck = errors.New("unknown check")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitViolations (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	case errors.Is(err, ErrRootNotFound), errors.Is(err, ErrFatalIO):
		return ExitFatalIOError
	case errors.Is(err, ErrUnknownCheck):
		return ExitUsageError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitViolations
}
