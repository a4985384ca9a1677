// Package scanner implements the tree walker shared by every repoguard check.
//
// The scanner package is responsible for:
//   - Recursively discovering files under a root directory
//   - Pruning excluded directory names at every depth
//   - Producing an immutable FileEntry per visited file
//   - Reading file content as text, distinguishing binary files via NotTextError
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
