package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/vvka-141/repoguard/internal/files/filesystem"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// Scanner walks a directory tree, skipping excluded directory names, and
// hands every remaining file to a callback.
// Scanner holds no per-run state; one value may serve any number of walks.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	exclude    ExclusionSet
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner(exclude ExclusionSet) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), exclude)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, exclude ExclusionSet) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if exclude == nil {
		exclude = ExclusionSet{}
	}
	return &Scanner{
		fsProvider: fsProvider,
		exclude:    exclude,
	}
}

// FS returns the filesystem provider the scanner reads from.
func (s *Scanner) FS() filesystem.FileSystemProvider {
	return s.fsProvider
}

// Walk visits every file under root exactly once, in lexical order.
//
// Directories whose base name is in the exclusion set are pruned at any
// depth. Any listing, stat or permission error aborts the walk with an error
// wrapping repoguard.ErrFatalIO; a missing root wraps repoguard.ErrRootNotFound.
// An error returned by onFile also stops the walk and is returned as-is.
func (s *Scanner) Walk(root string, onFile func(FileEntry) error) error {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v: %w", root, err, repoguard.ErrRootNotFound)
	}

	return dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %v: %w", root, err, repoguard.ErrFatalIO)
		}

		info := file.Info()
		if info.IsDir() {
			if file.RelativePath() != "." && s.exclude.Contains(info.Name()) {
				return filesystem.SkipDir
			}
			return nil
		}

		return onFile(NewFileEntry(file.Path(), file.RelativePath(), info.Size()))
	})
}

// NotTextError reports that a file's content is not text (it contains a NUL
// byte or is not valid UTF-8).
type NotTextError struct {
	Path string
}

func (e *NotTextError) Error() string {
	return fmt.Sprintf("%s is not a text file", e.Path)
}

// ReadText reads a file as text. Binary content yields *NotTextError; read
// failures are returned wrapped.
func (s *Scanner) ReadText(entry FileEntry) (string, error) {
	data, err := s.fsProvider.ReadFile(entry.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", entry.RelativePath, err)
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", &NotTextError{Path: entry.RelativePath}
	}
	return string(data), nil
}

// IsNotText reports whether err is a *NotTextError.
func IsNotText(err error) bool {
	var notText *NotTextError
	return errors.As(err, &notText)
}

// DirExists reports whether path exists and is a directory. Errors other than
// "does not exist" are returned.
func (s *Scanner) DirExists(path string) (bool, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %v: %w", path, err, repoguard.ErrFatalIO)
	}
	return info.IsDir(), nil
}
