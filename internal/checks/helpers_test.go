package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/repoguard/internal/files/filesystem"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/logging"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

const testRoot = "/repo"

func newRunContext(check Check, mfs *filesystem.MemoryFileSystem) *report.RunContext {
	s := scanner.NewScannerWithFS(mfs, rules.DefaultExclusions())
	return report.NewRunContext(check.Name(), testRoot, s, logging.NewNullLogger())
}

func runCheck(t *testing.T, check Check, mfs *filesystem.MemoryFileSystem) *report.RunContext {
	t.Helper()
	rc := newRunContext(check, mfs)
	require.NoError(t, check.Run(rc))
	return rc
}

func violationsFor(rc *report.RunContext, path string) []repoguard.Violation {
	var out []repoguard.Violation
	for _, v := range rc.Violations() {
		if v.Path == path {
			out = append(out, v)
		}
	}
	return out
}

func reasons(rc *report.RunContext) []repoguard.ReasonCode {
	var out []repoguard.ReasonCode
	for _, v := range rc.Violations() {
		out = append(out, v.Reason)
	}
	return out
}
