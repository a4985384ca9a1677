package frontmatter

import (
	"fmt"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// Required and advisory keys.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldModel       = "model"
	FieldLocation    = "location"
)

// RequiredFields must be present as non-empty strings.
var RequiredFields = []string{FieldName, FieldDescription}

// Record is the parsed frontmatter of one file.
type Record struct {
	// Name, Description, Model and Location are the trimmed string values of
	// their keys, or "" when a key is absent or not a string.
	Name        string
	Description string
	Model       string
	Location    string

	// Fields holds every key of the header as decoded by yaml.v3.
	Fields map[string]interface{}
	// RawYAML is the text between the delimiters.
	RawYAML string
	// Body is the content after the closing delimiter.
	Body string
}

// Has reports whether key is present in the header, whatever its value.
func (r *Record) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// Error is a frontmatter failure with the file path, the stage it failed at
// and an actionable hint.
type Error struct {
	Path    string
	Line    int // 0 if unknown
	Reason  repoguard.ReasonCode
	Field   string // set for field-level failures
	Message string
	Hint    string
}

func (e *Error) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
	}

	msg := fmt.Sprintf("frontmatter error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("frontmatter error in %s [field: %s]: %s", location, e.Field, e.Message)
	}
	return msg
}

// ValidationResult collects the field-level failures of one record.
type ValidationResult struct {
	Errors []*Error
}

// Valid reports whether no failures were recorded.
func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

func (v *ValidationResult) add(e *Error) {
	v.Errors = append(v.Errors, e)
}
