// Package logging provides concrete implementations of the repoguard.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed diagnostic lines to a writer (stderr by default)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
