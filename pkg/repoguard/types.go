package repoguard

import "fmt"

// Severity determines whether a violation affects the overall pass/fail status.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ReasonCode identifies the rule that produced a violation.
type ReasonCode string

const (
	// Sensitive-file detector
	ReasonSensitiveFile ReasonCode = "sensitive-file"

	// Size-limit enforcer
	ReasonFileTooLarge    ReasonCode = "file-too-large"
	ReasonVideoNotAllowed ReasonCode = "video-not-allowed"

	// Whitespace normalizer
	ReasonNeedsNormalization ReasonCode = "needs-normalization"
	ReasonWriteFailed        ReasonCode = "write-failed"

	// Frontmatter validator
	ReasonMissingStartDelimiter ReasonCode = "missing-start-delimiter"
	ReasonMissingEndDelimiter   ReasonCode = "missing-end-delimiter"
	ReasonInvalidYAML           ReasonCode = "invalid-yaml"
	ReasonMissingField          ReasonCode = "missing-field"
	ReasonInvalidField          ReasonCode = "invalid-field"

	// Consistency validator
	ReasonInvalidFrontmatter      ReasonCode = "invalid-frontmatter"
	ReasonMissingName             ReasonCode = "missing-name"
	ReasonDuplicateName           ReasonCode = "duplicate-name"
	ReasonMissingRecommendedField ReasonCode = "missing-recommended-field"

	// Shared
	ReasonReadFailed ReasonCode = "read-failed"
)

// Violation is a single reported rule failure tied to one file.
type Violation struct {
	Path     string     `json:"path"`
	Reason   ReasonCode `json:"reason"`
	Message  string     `json:"message"`
	Severity Severity   `json:"severity"`

	// ContainsCredentials is set by the sensitive-file detector when the
	// file content also looks like it holds secrets.
	ContainsCredentials bool `json:"contains_credentials,omitempty"`
}

// IsError reports whether the violation fails the run.
func (v Violation) IsError() bool {
	return v.Severity == SeverityError
}

// String renders the violation as a one-line report entry.
func (v Violation) String() string {
	return fmt.Sprintf("%s: [%s] %s", v.Path, v.Reason, v.Message)
}

// Fix records a file rewritten in place by the whitespace normalizer.
type Fix struct {
	Path         string `json:"path"`
	BeforeSHA256 string `json:"before_sha256"`
	AfterSHA256  string `json:"after_sha256"`
}

// RunSummary is computed once at the end of a check run.
type RunSummary struct {
	Check        string `json:"check"`
	FilesScanned int    `json:"files_scanned"`
	ErrorCount   int    `json:"error_count"`
	WarningCount int    `json:"warning_count"`
	FixedCount   int    `json:"fixed_count"`
}

// Failed reports whether the run found one or more error-level violations.
// Warnings never fail a run.
func (s RunSummary) Failed() bool {
	return s.ErrorCount > 0
}

// Err returns ErrViolationsFound wrapped with the error count when the run failed.
func (s RunSummary) Err() error {
	if !s.Failed() {
		return nil
	}
	return fmt.Errorf("%s: %d error(s): %w", s.Check, s.ErrorCount, ErrViolationsFound)
}
