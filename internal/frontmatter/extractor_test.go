package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

func reasonOf(t *testing.T, err error) repoguard.ReasonCode {
	t.Helper()
	var fmErr *Error
	require.True(t, errors.As(err, &fmErr), "expected *frontmatter.Error, got %T: %v", err, err)
	return fmErr.Reason
}

func TestExtract_Valid(t *testing.T) {
	rec, err := Extract("---\nname: foo\ndescription: bar\n---\nbody", "agents/foo.md")
	require.NoError(t, err)

	assert.Equal(t, "foo", rec.Name)
	assert.Equal(t, "bar", rec.Description)
	assert.Equal(t, "name: foo\ndescription: bar", rec.RawYAML)
	assert.Equal(t, "body", rec.Body)
	assert.True(t, rec.Has(FieldName))
	assert.False(t, rec.Has(FieldModel))
}

func TestExtract_OptionalFields(t *testing.T) {
	content := "---\nname: reviewer\ndescription: Reviews code\nmodel: sonnet\nlocation: project\n---\n"
	rec, err := Extract(content, "agents/reviewer.md")
	require.NoError(t, err)

	assert.Equal(t, "sonnet", rec.Model)
	assert.Equal(t, "project", rec.Location)
}

func TestExtract_CRLFAndBOM(t *testing.T) {
	content := "\ufeff---\r\nname: foo\r\ndescription: bar\r\n---\r\nbody\r\n"
	rec, err := Extract(content, "skills/foo.md")
	require.NoError(t, err)
	assert.Equal(t, "foo", rec.Name)
	assert.Equal(t, "bar", rec.Description)
}

func TestExtract_MissingStartDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain markdown", "# Title\n\nname: foo\n"},
		{"empty file", ""},
		{"leading blank line", "\n---\nname: foo\n---\n"},
		{"delimiter with text", "--- yaml\nname: foo\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.content, "agents/x.md")
			assert.Equal(t, repoguard.ReasonMissingStartDelimiter, reasonOf(t, err))
		})
	}
}

func TestExtract_MissingEndDelimiter(t *testing.T) {
	_, err := Extract("---\nname: foo\ndescription: bar\nbody without close", "agents/x.md")
	assert.Equal(t, repoguard.ReasonMissingEndDelimiter, reasonOf(t, err))
}

func TestExtract_InvalidYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", "---\nname: foo\ndescription: [unclosed\n---\n"},
		{"list instead of mapping", "---\n- name\n- description\n---\n"},
		{"scalar instead of mapping", "---\njust text\n---\n"},
		{"duplicate key", "---\nname: a\nname: b\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.content, "agents/x.md")
			assert.Equal(t, repoguard.ReasonInvalidYAML, reasonOf(t, err))
		})
	}
}

func TestExtract_InvalidYAMLLineNumber(t *testing.T) {
	_, err := Extract("---\nname: foo\ndescription: [unclosed\n---\n", "agents/x.md")

	var fmErr *Error
	require.True(t, errors.As(err, &fmErr))
	assert.Greater(t, fmErr.Line, 1, "line should account for the opening delimiter")
	assert.Contains(t, fmErr.Error(), "agents/x.md (line")
}

func TestExtract_EmptyHeader(t *testing.T) {
	rec, err := Extract("---\n---\nbody", "agents/x.md")
	require.NoError(t, err)
	assert.Empty(t, rec.Fields)
}

func TestExtract_ThenValidate_FirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    repoguard.ReasonCode
	}{
		{"valid", "---\nname: foo\ndescription: bar\n---\nbody", ""},
		{"missing start", "name: foo\n", repoguard.ReasonMissingStartDelimiter},
		{"missing end", "---\nname: foo\ndescription: bar\n", repoguard.ReasonMissingEndDelimiter},
		{"bad yaml", "---\nname: [unclosed\n---\n", repoguard.ReasonInvalidYAML},
		{"missing description", "---\nname: foo\n---\n", repoguard.ReasonMissingField},
		{"numeric name", "---\nname: 42\ndescription: bar\n---\n", repoguard.ReasonInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := firstFailure(tt.content, "agents/x.md")
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, reasonOf(t, err))
		})
	}
}

// firstFailure runs every stage and returns the first error, the way a
// single-violation caller would.
func firstFailure(content, path string) error {
	rec, err := Extract(content, path)
	if err != nil {
		return err
	}
	if result := Validate(rec, path); !result.Valid() {
		return result.Errors[0]
	}
	return nil
}

func TestExtract_DuplicateKeyMessageIsOneLine(t *testing.T) {
	_, err := Extract("---\nname: a\nname: b\n---\n", "agents/x.md")
	require.Error(t, err)

	var fmErr *Error
	require.True(t, errors.As(err, &fmErr))
	assert.Equal(t, repoguard.ReasonInvalidYAML, fmErr.Reason)
	assert.NotContains(t, fmErr.Message, "\n")
	assert.Contains(t, fmErr.Message, "already defined")
	assert.NotContains(t, fmErr.Error(), "\n")
}
