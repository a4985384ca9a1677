package scanner

import (
	"path"
	"strings"
)

// FileEntry describes one visited file. It is produced by Scanner.Walk and is
// only valid for the duration of the callback it is passed to.
type FileEntry struct {
	// Path is the absolute path of the file.
	Path string
	// RelativePath is the path relative to the scan root, using forward slashes.
	RelativePath string
	// Name is the base name of the file.
	Name string
	// Extension is the lower-cased extension including the dot, or "".
	Extension string
	SizeBytes int64
}

// NewFileEntry builds a FileEntry from an absolute and a root-relative path.
func NewFileEntry(absPath, relPath string, size int64) FileEntry {
	rel := strings.ReplaceAll(relPath, "\\", "/")
	name := path.Base(rel)
	return FileEntry{
		Path:         absPath,
		RelativePath: rel,
		Name:         name,
		Extension:    strings.ToLower(path.Ext(name)),
		SizeBytes:    size,
	}
}

// ExclusionSet is a set of directory base names that are never descended into.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds an ExclusionSet from directory names.
func NewExclusionSet(names ...string) ExclusionSet {
	set := make(ExclusionSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Contains reports whether a directory with this base name is excluded.
func (s ExclusionSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
