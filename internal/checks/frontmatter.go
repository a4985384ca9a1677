package checks

import (
	"errors"
	"fmt"

	"github.com/vvka-141/repoguard/internal/frontmatter"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// FrontmatterCheck validates the header of every markdown file in the
// metadata directories.
type FrontmatterCheck struct{}

func NewFrontmatterCheck() *FrontmatterCheck { return &FrontmatterCheck{} }

func (c *FrontmatterCheck) Name() string { return NameFrontmatter }

func (c *FrontmatterCheck) Description() string {
	return "Validate frontmatter of agents, skills and commands"
}

func (c *FrontmatterCheck) Run(rc *report.RunContext) error {
	files, err := metadataFiles(rc)
	if err != nil {
		return err
	}

	for _, f := range files {
		rc.CountFile()
		rel := f.entry.RelativePath

		content, err := rc.Scanner.ReadText(f.entry)
		if err != nil {
			rc.Errorf(rel, repoguard.ReasonReadFailed, "could not read file: %v", err)
			continue
		}

		rec, err := frontmatter.Extract(content, rel)
		if err != nil {
			reportFrontmatterError(rc, rel, err)
			continue
		}

		result := frontmatter.Validate(rec, rel)
		for _, fe := range result.Errors {
			reportFrontmatterError(rc, rel, fe)
		}
		if result.Valid() {
			rc.Logger.Verbose("%s: %s (%s)", rel, rec.Name, rec.Description)
		}
	}
	return nil
}

func reportFrontmatterError(rc *report.RunContext, rel string, err error) {
	var fe *frontmatter.Error
	if !errors.As(err, &fe) {
		rc.Errorf(rel, repoguard.ReasonInvalidFrontmatter, "%v", err)
		return
	}

	msg := fe.Message
	if fe.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", fe.Line, msg)
	}
	if fe.Hint != "" {
		rc.Logger.Verbose("%s: %s", rel, fe.Hint)
	}
	rc.Errorf(rel, fe.Reason, "%s", msg)
}
