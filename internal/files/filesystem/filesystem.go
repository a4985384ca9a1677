package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileMode is an alias for fs.FileMode.
type FileMode = fs.FileMode

// SkipDir can be returned from a Walk callback invoked on a directory to
// prune that directory's subtree. Walking continues with the next sibling.
var SkipDir = fs.SkipDir

// File represents an individual file or directory visited by Walk
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walked directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for the
	// directory itself and for each file and directory below it.
	// fn receives the file/directory and any error encountered.
	// Returning SkipDir for a directory prunes it; any other error stops walking.
	// Symbolic links to directories are neither followed nor reported.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the directory entries at the given path, sorted by name.
	// This is a convenience method that returns a flat list of entries
	// without requiring Walk() for simple directory listing.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile replaces the file at path with data. The replacement is
	// all-or-nothing: on error the original content is left untouched.
	WriteFile(path string, data []byte, perm FileMode) error
}
