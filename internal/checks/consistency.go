package checks

import (
	"errors"

	"github.com/vvka-141/repoguard/internal/frontmatter"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// ConsistencyCheck enforces unique names across the metadata directories and
// warns about missing recommended fields.
type ConsistencyCheck struct{}

func NewConsistencyCheck() *ConsistencyCheck { return &ConsistencyCheck{} }

func (c *ConsistencyCheck) Name() string { return NameConsistency }

func (c *ConsistencyCheck) Description() string {
	return "Check name uniqueness and recommended fields across metadata files"
}

func (c *ConsistencyCheck) Run(rc *report.RunContext) error {
	files, err := metadataFiles(rc)
	if err != nil {
		return err
	}

	// name -> file that declared it first
	seen := make(map[string]string)

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
			msg := err.Error()
			var fe *frontmatter.Error
			if errors.As(err, &fe) {
				msg = fe.Message
			}
			rc.Errorf(rel, repoguard.ReasonInvalidFrontmatter, "frontmatter cannot be read: %s", msg)
			continue
		}

		name := rec.Name
		switch {
		case name == "":
			rc.Errorf(rel, repoguard.ReasonMissingName, "name is missing or not a string")
		case seen[name] != "":
			rc.Errorf(rel, repoguard.ReasonDuplicateName, "name %q is already used by %s", name, seen[name])
		default:
			seen[name] = rel
		}

		if field, ok := rules.RecommendedField(f.dir.Kind); ok && recommendedValue(rec, field) == "" {
			rc.Warnf(rel, repoguard.ReasonMissingRecommendedField,
				"%s files should declare %q", f.dir.Kind, field)
		}
	}
	return nil
}

func recommendedValue(rec *frontmatter.Record, field string) string {
	switch field {
	case frontmatter.FieldModel:
		return rec.Model
	case frontmatter.FieldLocation:
		return rec.Location
	default:
		return ""
	}
}
