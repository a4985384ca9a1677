package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
	readErr error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) read() ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	if err, ok := d.fs.listErrs[d.absPath]; ok {
		return fn(nil, err)
	}

	entries := d.fs.getEntriesUnder(d.absPath)

	// Order like filepath.WalkDir: lexical per directory level
	sort.Slice(entries, func(i, j int) bool {
		return lessBySegments(entries[i].absPath, entries[j].absPath)
	})

	var skipPrefixes []string
	for _, entry := range entries {
		if hasAnyPrefix(entry.absPath, skipPrefixes) {
			continue
		}

		if err, ok := d.fs.listErrs[entry.absPath]; ok && entry.absPath != d.absPath {
			if cbErr := fn(nil, err); cbErr != nil {
				return cbErr
			}
			skipPrefixes = append(skipPrefixes, entry.absPath+"/")
			continue
		}

		rel := "."
		if entry.absPath != d.absPath {
			rel = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
		}
		view := &memoryFile{
			absPath: entry.absPath,
			relPath: rel,
			info:    entry.info,
		}

		// Recover from panics in callback to prevent crashing the entire walk
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(view, nil)
		}()

		if callbackErr == SkipDir {
			if entry.absPath == d.absPath {
				return nil
			}
			prune := entry.absPath
			if !entry.info.IsDir() {
				prune = path.Dir(entry.absPath)
			}
			skipPrefixes = append(skipPrefixes, prune+"/")
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func lessBySegments(a, b string) bool {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files     map[string]*memoryFile // map of absolute path -> file
	root      string                 // root directory path
	writeErrs map[string]error       // injected WriteFile failures
	listErrs  map[string]error       // injected directory listing failures
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:     make(map[string]*memoryFile),
		root:      root,
		writeErrs: make(map[string]error),
		listErrs:  make(map[string]error),
	}

	mfs.files[root] = newMemoryDir(root, ".")

	return mfs
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddBytes(path, []byte(content))
}

// AddBytes adds a file with raw (possibly binary) content.
func (mfs *MemoryFileSystem) AddBytes(filePath string, content []byte) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddSizedFile adds a file that reports size bytes without holding that much
// content. Useful for size-limit tests.
func (mfs *MemoryFileSystem) AddSizedFile(filePath string, size int64) {
	mfs.AddBytes(filePath, nil)
	mfs.files[mfs.resolve(filePath)].info.size = size
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newMemoryDir(absPath, mfs.relative(absPath))
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailReads makes every read of filePath return err.
func (mfs *MemoryFileSystem) FailReads(filePath string, err error) {
	if f, ok := mfs.files[mfs.resolve(filePath)]; ok {
		f.readErr = err
	}
}

// FailWrites makes every WriteFile of filePath return err.
func (mfs *MemoryFileSystem) FailWrites(filePath string, err error) {
	mfs.writeErrs[mfs.resolve(filePath)] = err
}

// FailListing makes walking into dirPath report err.
func (mfs *MemoryFileSystem) FailListing(dirPath string, err error) {
	mfs.listErrs[mfs.resolve(dirPath)] = err
}

// Content returns the current content of a file, for assertions in tests.
func (mfs *MemoryFileSystem) Content(filePath string) (string, bool) {
	f, ok := mfs.files[mfs.resolve(filePath)]
	if !ok || f.info.IsDir() {
		return "", false
	}
	return string(f.content), true
}

// resolve calculates the absolute path within the virtual filesystem
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	return strings.TrimPrefix(absPath, strings.TrimSuffix(mfs.root, "/")+"/")
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))

	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", openPath, fs.ErrNotExist)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}

	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return file.read()
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)

	dir, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s: %w", dirPath, fs.ErrNotExist)
	}
	if !dir.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %s is not a directory", dirPath)
	}
	if err, ok := mfs.listErrs[absPath]; ok {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, file.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}

	return file.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm FileMode) error {
	absPath := mfs.resolve(filePath)

	if err, ok := mfs.writeErrs[absPath]; ok {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	if existing, ok := mfs.files[absPath]; ok && existing.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.AddBytes(absPath, content)
	mfs.files[absPath].info.mode = perm
	return nil
}
