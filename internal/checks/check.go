package checks

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/vvka-141/repoguard/internal/checksum"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// Check is one repository hygiene rule set.
type Check interface {
	Name() string
	Description() string
	Run(rc *report.RunContext) error
}

// Check names.
const (
	NameSensitive   = "sensitive"
	NameSize        = "size"
	NameWhitespace  = "whitespace"
	NameFrontmatter = "frontmatter"
	NameConsistency = "consistency"
)

// Options tune how checks are built.
type Options struct {
	// CheckOnly makes the whitespace check report files instead of fixing them.
	CheckOnly bool
}

// All returns every check in the order the combined run executes them.
func All(opts Options) []Check {
	return []Check{
		NewSensitiveCheck(),
		NewSizeCheck(),
		NewWhitespaceCheck(opts.CheckOnly, checksum.New()),
		NewFrontmatterCheck(),
		NewConsistencyCheck(),
	}
}

// Names lists the check names in execution order.
func Names() []string {
	all := All(Options{})
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the check called name.
func Lookup(name string, opts Options) (Check, error) {
	for _, c := range All(opts) {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%q (available: %s): %w", name, strings.Join(Names(), ", "), repoguard.ErrUnknownCheck)
}

// walkFiles visits every non-excluded file under the run root, counting each.
func walkFiles(rc *report.RunContext, fn func(scanner.FileEntry) error) error {
	return rc.Scanner.Walk(rc.Root, func(entry scanner.FileEntry) error {
		rc.CountFile()
		return fn(entry)
	})
}

// metadataFile is a markdown file directly inside one of the metadata directories.
type metadataFile struct {
	entry scanner.FileEntry
	dir   rules.MetadataDir
}

// metadataFiles lists the markdown files of every metadata directory, in
// directory order and lexical order within each. Missing directories are
// skipped.
func metadataFiles(rc *report.RunContext) ([]metadataFile, error) {
	var files []metadataFile
	for _, dir := range rules.MetadataDirs {
		absDir := rc.Join(dir.Path)

		exists, err := rc.Scanner.DirExists(absDir)
		if err != nil {
			return nil, err
		}
		if !exists {
			rc.Logger.Verbose("skipping %s: directory not found", dir.Path)
			continue
		}

		infos, err := rc.FS().ReadDir(absDir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %v: %w", dir.Path, err, repoguard.ErrFatalIO)
		}
		for _, info := range infos {
			if info.IsDir() || strings.ToLower(path.Ext(info.Name())) != rules.MetadataExtension {
				continue
			}
			files = append(files, metadataFile{
				entry: scanner.NewFileEntry(
					filepath.Join(absDir, info.Name()),
					path.Join(dir.Path, info.Name()),
					info.Size(),
				),
				dir: dir,
			})
		}
	}
	return files, nil
}
