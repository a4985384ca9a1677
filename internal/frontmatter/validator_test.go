package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

func mustExtract(t *testing.T, content string) *Record {
	t.Helper()
	rec, err := Extract(content, "agents/x.md")
	require.NoError(t, err)
	return rec
}

func TestValidate_Valid(t *testing.T) {
	result := Validate(mustExtract(t, "---\nname: foo\ndescription: bar\n---\n"), "agents/x.md")
	assert.True(t, result.Valid())
}

func TestValidate_MissingFieldsReportedPerField(t *testing.T) {
	result := Validate(mustExtract(t, "---\nmodel: sonnet\n---\n"), "agents/x.md")
	require.Len(t, result.Errors, 2)

	assert.Equal(t, repoguard.ReasonMissingField, result.Errors[0].Reason)
	assert.Equal(t, FieldName, result.Errors[0].Field)
	assert.Equal(t, repoguard.ReasonMissingField, result.Errors[1].Reason)
	assert.Equal(t, FieldDescription, result.Errors[1].Field)
}

func TestValidate_MissingStopsBeforeTypeCheck(t *testing.T) {
	// name is invalid too, but the missing description is the failing stage
	result := Validate(mustExtract(t, "---\nname: 7\n---\n"), "agents/x.md")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, repoguard.ReasonMissingField, result.Errors[0].Reason)
	assert.Equal(t, FieldDescription, result.Errors[0].Field)
}

func TestValidate_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		message string
	}{
		{"number", "---\nname: 42\ndescription: bar\n---\n", FieldName, "got number"},
		{"boolean", "---\nname: foo\ndescription: true\n---\n", FieldDescription, "got boolean"},
		{"null", "---\nname:\ndescription: bar\n---\n", FieldName, "got null"},
		{"list", "---\nname: [a, b]\ndescription: bar\n---\n", FieldName, "got list"},
		{"whitespace only", "---\nname: \"   \"\ndescription: bar\n---\n", FieldName, "must not be empty"},
		{"empty string", "---\nname: foo\ndescription: \"\"\n---\n", FieldDescription, "must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(mustExtract(t, tt.content), "agents/x.md")
			require.Len(t, result.Errors, 1)

			e := result.Errors[0]
			assert.Equal(t, repoguard.ReasonInvalidField, e.Reason)
			assert.Equal(t, tt.field, e.Field)
			assert.Contains(t, e.Message, tt.message)
		})
	}
}

func TestExtract_StringValues(t *testing.T) {
	rec := mustExtract(t, "---\nname: \"  foo  \"\nmodel: \"\"\nlocation: 3\ndescription: [a]\n---\n")

	assert.Equal(t, "foo", rec.Name)
	assert.Empty(t, rec.Model)
	assert.Empty(t, rec.Location, "non-string values are not exposed as strings")
	assert.Empty(t, rec.Description)
	assert.True(t, rec.Has(FieldLocation))
}

func TestError_Format(t *testing.T) {
	e := &Error{Path: "skills/a.md", Field: "name", Message: "required field \"name\" is missing"}
	assert.Equal(t, "frontmatter error in skills/a.md [field: name]: required field \"name\" is missing", e.Error())

	e = &Error{Path: "skills/a.md", Line: 3, Message: "bad"}
	assert.Equal(t, "frontmatter error in skills/a.md (line 3): bad", e.Error())
}
