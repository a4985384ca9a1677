package checks

import (
	"fmt"

	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// SizeCheck rejects videos and files above their category limit.
type SizeCheck struct{}

func NewSizeCheck() *SizeCheck { return &SizeCheck{} }

func (c *SizeCheck) Name() string { return NameSize }

func (c *SizeCheck) Description() string {
	return "Reject video files and files above the size limit"
}

func (c *SizeCheck) Run(rc *report.RunContext) error {
	return walkFiles(rc, func(entry scanner.FileEntry) error {
		category := rules.ClassifySize(entry.Extension)

		limit, ok := rules.SizeLimit(category)
		if !ok {
			rc.Errorf(entry.RelativePath, repoguard.ReasonVideoNotAllowed,
				"video files are not allowed (%s MiB)", FormatMiB(entry.SizeBytes))
			return nil
		}

		if entry.SizeBytes > limit {
			rc.Errorf(entry.RelativePath, repoguard.ReasonFileTooLarge,
				"%s is %s MiB, limit is %s MiB", category, FormatMiB(entry.SizeBytes), FormatMiB(limit))
		}
		return nil
	})
}

// FormatMiB renders a byte count in MiB with two decimals.
func FormatMiB(bytes int64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/float64(repoguard.MiB))
}
