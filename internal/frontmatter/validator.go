package frontmatter

import (
	"fmt"
	"strings"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// Validate checks the required fields of a record.
//
// Missing fields are reported first, one error per field. Only when every
// required field is present are the values checked: each must be a string
// with non-whitespace content.
func Validate(rec *Record, filePath string) ValidationResult {
	var result ValidationResult

	for _, field := range RequiredFields {
		if !rec.Has(field) {
			result.add(&Error{
				Path:    filePath,
				Reason:  repoguard.ReasonMissingField,
				Field:   field,
				Message: fmt.Sprintf("required field %q is missing", field),
				Hint:    fmt.Sprintf("Add a line \"%s: ...\" to the frontmatter.", field),
			})
		}
	}
	if !result.Valid() {
		return result
	}

	for _, field := range RequiredFields {
		value := rec.Fields[field]
		s, ok := value.(string)
		switch {
		case !ok:
			result.add(&Error{
				Path:    filePath,
				Reason:  repoguard.ReasonInvalidField,
				Field:   field,
				Message: fmt.Sprintf("field %q must be a string, got %s", field, describeType(value)),
			})
		case strings.TrimSpace(s) == "":
			result.add(&Error{
				Path:    filePath,
				Reason:  repoguard.ReasonInvalidField,
				Field:   field,
				Message: fmt.Sprintf("field %q must not be empty", field),
			})
		}
	}

	return result
}

func describeType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
