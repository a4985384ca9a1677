package checks

import (
	"strings"
	"unicode"

	"github.com/vvka-141/repoguard/internal/checksum"
	"github.com/vvka-141/repoguard/internal/files/filesystem"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

const defaultFileMode filesystem.FileMode = 0644

// WhitespaceCheck strips trailing whitespace and normalizes the final newline
// of text files. In check-only mode it reports files instead of rewriting them.
type WhitespaceCheck struct {
	checkOnly  bool
	calculator checksum.Calculator
}

// NewWhitespaceCheck creates the check. Panics if calculator is nil.
func NewWhitespaceCheck(checkOnly bool, calculator checksum.Calculator) *WhitespaceCheck {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &WhitespaceCheck{checkOnly: checkOnly, calculator: calculator}
}

func (c *WhitespaceCheck) Name() string { return NameWhitespace }

func (c *WhitespaceCheck) Description() string {
	if c.checkOnly {
		return "Report files with trailing whitespace or a missing final newline"
	}
	return "Strip trailing whitespace and normalize final newlines"
}

func (c *WhitespaceCheck) Run(rc *report.RunContext) error {
	return walkFiles(rc, func(entry scanner.FileEntry) error {
		if !rules.NormalizesWhitespace(entry.Extension) {
			return nil
		}

		content, err := rc.Scanner.ReadText(entry)
		if err != nil {
			if scanner.IsNotText(err) {
				rc.Logger.Verbose("skipping binary file %s", entry.RelativePath)
				return nil
			}
			rc.Warnf(entry.RelativePath, repoguard.ReasonReadFailed, "could not read file: %v", err)
			return nil
		}

		normalized := Normalize(content)
		if normalized == content {
			return nil
		}

		if c.checkOnly {
			rc.Errorf(entry.RelativePath, repoguard.ReasonNeedsNormalization,
				"trailing whitespace or final newline needs normalization")
			return nil
		}

		perm := defaultFileMode
		if info, err := rc.FS().Stat(entry.Path); err == nil {
			perm = info.Mode().Perm()
		}
		if err := rc.FS().WriteFile(entry.Path, []byte(normalized), perm); err != nil {
			rc.Warnf(entry.RelativePath, repoguard.ReasonWriteFailed, "could not rewrite file: %v", err)
			return nil
		}

		rc.RecordFix(repoguard.Fix{
			Path:         entry.RelativePath,
			BeforeSHA256: c.calculator.Calculate([]byte(content)),
			AfterSHA256:  c.calculator.Calculate([]byte(normalized)),
		})
		return nil
	})
}

// Normalize right-trims every line, then ends non-empty content with exactly
// one newline. CRLF line endings become LF. Normalize(Normalize(s)) equals
// Normalize(s).
func Normalize(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	out := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
