package frontmatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

const byteOrderMark = "\ufeff"

// yamlLineRegex pulls the line number out of yaml.v3 error messages.
var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Extract locates the frontmatter block and decodes it.
//
// Error cases:
//   - first line is not "---" → Reason missing-start-delimiter
//   - no later "---" line → Reason missing-end-delimiter
//   - YAML syntax error or non-mapping header → Reason invalid-yaml
func Extract(content string, filePath string) (*Record, error) {
	content = strings.TrimPrefix(content, byteOrderMark)
	lines := strings.Split(content, "\n")

	if !isDelimiter(lines[0]) {
		return nil, &Error{
			Path:    filePath,
			Line:    1,
			Reason:  repoguard.ReasonMissingStartDelimiter,
			Message: "file does not start with a frontmatter delimiter",
			Hint:    "The first line must be exactly \"---\".",
		}
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, &Error{
			Path:    filePath,
			Reason:  repoguard.ReasonMissingEndDelimiter,
			Message: "frontmatter is not closed",
			Hint:    "Add a line containing only \"---\" after the header fields.",
		}
	}

	raw := strings.Join(lines[1:end], "\n")

	var fields map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, wrapYAMLError(err, filePath)
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}

	rec := &Record{
		Fields:  fields,
		RawYAML: raw,
		Body:    strings.Join(lines[end+1:], "\n"),
	}
	rec.Name = stringValue(fields, FieldName)
	rec.Description = stringValue(fields, FieldDescription)
	rec.Model = stringValue(fields, FieldModel)
	rec.Location = stringValue(fields, FieldLocation)

	return rec, nil
}

// stringValue returns the trimmed value of key, or "" when it is absent or
// not a string.
func stringValue(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return strings.TrimSpace(s)
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == Delimiter
}

// wrapYAMLError converts yaml.v3 errors into *Error, shifting line numbers by
// one to account for the opening delimiter.
func wrapYAMLError(err error, filePath string) error {
	e := &Error{
		Path:    filePath,
		Reason:  repoguard.ReasonInvalidYAML,
		Message: fmt.Sprintf("frontmatter is not a valid key-value document: %s", oneLine(strings.TrimPrefix(err.Error(), "yaml: "))),
		Hint:    "Use \"key: value\" lines; quote values containing \": \" or starting with special characters.",
	}
	if m := yamlLineRegex.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			e.Line = n + 1
		}
	}
	return e
}

// oneLine collapses the multi-line "unmarshal errors:" form of yaml.v3.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
