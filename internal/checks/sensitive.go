package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// SensitiveCheck flags files that must not be committed. It never modifies
// files.
type SensitiveCheck struct{}

func NewSensitiveCheck() *SensitiveCheck { return &SensitiveCheck{} }

func (c *SensitiveCheck) Name() string { return NameSensitive }

func (c *SensitiveCheck) Description() string {
	return "Detect secrets, private keys and IDE state files"
}

func (c *SensitiveCheck) Run(rc *report.RunContext) error {
	return walkFiles(rc, func(entry scanner.FileEntry) error {
		rule, ok := rules.FirstMatch(rules.SensitiveFileRules, entry.Name, entry.RelativePath)
		if !ok {
			return nil
		}

		v := repoguard.Violation{
			Path:     entry.RelativePath,
			Reason:   repoguard.ReasonSensitiveFile,
			Message:  fmt.Sprintf("%s must not be committed (matches %s)", rule.Label, rule.Matcher),
			Severity: repoguard.SeverityError,
		}

		// Content is inspected only to enrich the violation; binary or
		// unreadable files are still reported.
		content, err := rc.Scanner.ReadText(entry)
		if err != nil {
			rc.Logger.Verbose("not scanning content of %s: %v", entry.RelativePath, err)
		} else if rules.CredentialContent.Match(content) {
			v.ContainsCredentials = true
			if rules.DotenvRule.Matches(entry.Name, entry.RelativePath) {
				if keys := credentialKeys(content); len(keys) > 0 {
					v.Message += "; credential keys: " + strings.Join(keys, ", ")
				}
			}
		}

		rc.Report(v)
		return nil
	})
}

// credentialKeys returns the sorted dotenv keys whose names look like
// secrets. Unparseable content yields nil.
func credentialKeys(content string) []string {
	env, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil
	}
	var keys []string
	for k := range env {
		if rules.CredentialKey.Match(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
