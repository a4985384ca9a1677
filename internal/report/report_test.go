package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/repoguard/internal/files/filesystem"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/logging"
	"github.com/vvka-141/repoguard/internal/tui"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

func newTestContext() *RunContext {
	s := scanner.NewScannerWithFS(filesystem.NewMemoryFileSystem("/repo"), nil)
	return NewRunContext("size", "/repo", s, logging.NewNullLogger())
}

func populated() *RunContext {
	rc := newTestContext()
	rc.CountFile()
	rc.CountFile()
	rc.CountFile()
	rc.Errorf("clip.mp4", repoguard.ReasonVideoNotAllowed, "video files are not allowed")
	rc.Warnf("notes.md", repoguard.ReasonWriteFailed, "could not rewrite: %s", "read-only")
	rc.Report(repoguard.Violation{
		Path:                ".env",
		Reason:              repoguard.ReasonSensitiveFile,
		Message:             "dotenv file must not be committed",
		Severity:            repoguard.SeverityError,
		ContainsCredentials: true,
	})
	rc.RecordFix(repoguard.Fix{Path: "main.go", BeforeSHA256: "a", AfterSHA256: "b"})
	return rc
}

func TestNewRunContext_NilArgs(t *testing.T) {
	s := scanner.NewScannerWithFS(filesystem.NewMemoryFileSystem("/"), nil)
	assert.Panics(t, func() { NewRunContext("x", "/", nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewRunContext("x", "/", s, nil) })
}

func TestRunContext_Summary(t *testing.T) {
	rc := populated()

	s := rc.Summary()
	assert.Equal(t, repoguard.RunSummary{
		Check:        "size",
		FilesScanned: 3,
		ErrorCount:   2,
		WarningCount: 1,
		FixedCount:   1,
	}, s)
	assert.True(t, s.Failed())
}

func TestRunContext_PreservesOrder(t *testing.T) {
	rc := populated()

	var paths []string
	for _, v := range rc.Violations() {
		paths = append(paths, v.Path)
	}
	assert.Equal(t, []string{"clip.mp4", "notes.md", ".env"}, paths)
}

func TestRunContext_WarningsOnlyPasses(t *testing.T) {
	rc := newTestContext()
	rc.Warnf("agents/a.md", repoguard.ReasonMissingRecommendedField, "agent files should declare %q", "model")

	assert.False(t, rc.Summary().Failed())
	assert.NoError(t, rc.Summary().Err())
}

func TestRunContext_Join(t *testing.T) {
	rc := newTestContext()
	assert.Equal(t, "/repo/agents/a.md", rc.Join("agents/a.md"))
}

func TestHumanPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &HumanPrinter{Out: &out, Err: &errOut, Palette: tui.NewPalette(false)}

	require.NoError(t, p.Print(populated()))

	assert.Equal(t,
		"✓ fixed main.go\n"+
			"size failed: 3 file(s) scanned, 2 error(s), 1 warning(s), 1 fixed\n",
		out.String())

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "✗ clip.mp4: video files are not allowed [video-not-allowed]", lines[0])
	assert.Equal(t, "! notes.md: could not rewrite: read-only [write-failed]", lines[1])
	assert.Equal(t, "✗ .env: dotenv file must not be committed [sensitive-file] CONTAINS CREDENTIALS", lines[2])
}

func TestHumanPrinter_EmptyRunStillPrintsTotals(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewHumanPrinter(&out, &errOut)

	require.NoError(t, p.Print(newTestContext()))

	assert.Equal(t, "size passed: 0 file(s) scanned, 0 error(s), 0 warning(s), 0 fixed\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestJSONPrinter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONPrinter(&out).Print(populated()))

	var doc Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	_, err := uuid.Parse(doc.RunID)
	assert.NoError(t, err, "run_id should be a UUID")
	assert.Equal(t, "size", doc.Check)
	assert.Equal(t, "/repo", doc.Root)
	assert.False(t, doc.Passed)
	assert.Equal(t, 2, doc.Summary.ErrorCount)
	require.Len(t, doc.Violations, 3)
	assert.True(t, doc.Violations[2].ContainsCredentials)
	require.Len(t, doc.Fixes, 1)
	assert.Equal(t, "main.go", doc.Fixes[0].Path)
}

func TestJSONPrinter_EmptyListsNotNull(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONPrinter(&out).Print(newTestContext()))

	assert.Contains(t, out.String(), `"violations": []`)
	assert.Contains(t, out.String(), `"fixes": []`)
	assert.Contains(t, out.String(), `"passed": true`)
}
