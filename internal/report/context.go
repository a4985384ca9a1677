package report

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/repoguard/internal/files/filesystem"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// RunContext carries the state of one check run.
type RunContext struct {
	Check   string
	Root    string
	Scanner *scanner.Scanner
	Logger  repoguard.Logger

	filesScanned int
	violations   []repoguard.Violation
	fixes        []repoguard.Fix
}

// NewRunContext creates the state for running check over root.
// Panics if scanner or logger is nil.
func NewRunContext(check, root string, s *scanner.Scanner, logger repoguard.Logger) *RunContext {
	if s == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &RunContext{
		Check:   check,
		Root:    root,
		Scanner: s,
		Logger:  logger,
	}
}

// FS returns the filesystem the run reads from and writes to.
func (rc *RunContext) FS() filesystem.FileSystemProvider {
	return rc.Scanner.FS()
}

// Join resolves a root-relative, slash-separated path.
func (rc *RunContext) Join(rel string) string {
	return filepath.Join(rc.Root, filepath.FromSlash(rel))
}

// CountFile records that one more file was examined.
func (rc *RunContext) CountFile() {
	rc.filesScanned++
}

// Report appends a violation.
func (rc *RunContext) Report(v repoguard.Violation) {
	rc.Logger.Verbose("%s: %s", v.Severity, v)
	rc.violations = append(rc.violations, v)
}

// Errorf reports an error-level violation.
func (rc *RunContext) Errorf(path string, reason repoguard.ReasonCode, format string, args ...interface{}) {
	rc.Report(repoguard.Violation{
		Path:     path,
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
		Severity: repoguard.SeverityError,
	})
}

// Warnf reports a warning-level violation. Warnings never fail a run.
func (rc *RunContext) Warnf(path string, reason repoguard.ReasonCode, format string, args ...interface{}) {
	rc.Report(repoguard.Violation{
		Path:     path,
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
		Severity: repoguard.SeverityWarning,
	})
}

// RecordFix appends a file rewritten in place.
func (rc *RunContext) RecordFix(f repoguard.Fix) {
	rc.Logger.Verbose("fixed %s", f.Path)
	rc.fixes = append(rc.fixes, f)
}

// Violations returns the violations in the order they were reported.
func (rc *RunContext) Violations() []repoguard.Violation {
	return rc.violations
}

// Fixes returns the fixes in the order they were recorded.
func (rc *RunContext) Fixes() []repoguard.Fix {
	return rc.fixes
}

// Summary computes the run totals.
func (rc *RunContext) Summary() repoguard.RunSummary {
	s := repoguard.RunSummary{
		Check:        rc.Check,
		FilesScanned: rc.filesScanned,
		FixedCount:   len(rc.fixes),
	}
	for _, v := range rc.violations {
		if v.IsError() {
			s.ErrorCount++
		} else {
			s.WarningCount++
		}
	}
	return s
}
