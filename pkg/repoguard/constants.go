package repoguard

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Check completed with zero error-level violations
	ExitViolations   = 1  // One or more error-level violations, or an unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flags, unexpected args)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitFatalIOError = 10 // Root missing or a directory could not be listed
)

const (
	// KiB and MiB are binary size units used by the size check.
	KiB int64 = 1024
	MiB int64 = 1024 * KiB

	// DefaultRoot is the scan root used when --root is not given.
	DefaultRoot = "."
)
