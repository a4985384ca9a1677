package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vvka-141/repoguard/internal/tui"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// Printer renders a finished run.
type Printer interface {
	Print(rc *RunContext) error
}

// HumanPrinter writes one line per fix and the summary to Out, and one line
// per violation to Err.
type HumanPrinter struct {
	Out     io.Writer
	Err     io.Writer
	Palette tui.Palette
}

// NewHumanPrinter creates a printer, styling each stream only when it is an
// interactive terminal.
func NewHumanPrinter(out, errOut io.Writer) *HumanPrinter {
	return &HumanPrinter{
		Out:     out,
		Err:     errOut,
		Palette: tui.NewPalette(tui.IsStyled(out) && tui.IsStyled(errOut)),
	}
}

func (p *HumanPrinter) Print(rc *RunContext) error {
	pal := p.Palette

	for _, f := range rc.Fixes() {
		if _, err := fmt.Fprintf(p.Out, "%s fixed %s\n", pal.Success(tui.SymbolCheck), f.Path); err != nil {
			return err
		}
	}

	for _, v := range rc.Violations() {
		symbol := pal.Warning(tui.SymbolWarning)
		if v.IsError() {
			symbol = pal.Error(tui.SymbolCross)
		}
		line := fmt.Sprintf("%s %s: %s %s", symbol, v.Path, v.Message, pal.Muted("["+string(v.Reason)+"]"))
		if v.ContainsCredentials {
			line += " " + pal.Error("CONTAINS CREDENTIALS")
		}
		if _, err := fmt.Fprintln(p.Err, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(p.Out, pal.Summary(SummaryLine(rc.Summary())))
	return err
}

// SummaryLine renders the totals of a run. It is printed even when every
// count is zero.
func SummaryLine(s repoguard.RunSummary) string {
	status := "passed"
	if s.Failed() {
		status = "failed"
	}
	return fmt.Sprintf("%s %s: %d file(s) scanned, %d error(s), %d warning(s), %d fixed",
		s.Check, status, s.FilesScanned, s.ErrorCount, s.WarningCount, s.FixedCount)
}

// JSONPrinter writes the run as a single JSON document.
type JSONPrinter struct {
	Out io.Writer
}

// NewJSONPrinter creates a printer writing to out.
func NewJSONPrinter(out io.Writer) *JSONPrinter {
	return &JSONPrinter{Out: out}
}

// Document is the JSON representation of a run.
type Document struct {
	RunID      string                `json:"run_id"`
	Check      string                `json:"check"`
	Root       string                `json:"root"`
	Summary    repoguard.RunSummary  `json:"summary"`
	Passed     bool                  `json:"passed"`
	Violations []repoguard.Violation `json:"violations"`
	Fixes      []repoguard.Fix       `json:"fixes"`
}

func (p *JSONPrinter) Print(rc *RunContext) error {
	summary := rc.Summary()
	doc := Document{
		RunID:      uuid.NewString(),
		Check:      rc.Check,
		Root:       rc.Root,
		Summary:    summary,
		Passed:     !summary.Failed(),
		Violations: rc.Violations(),
		Fixes:      rc.Fixes(),
	}
	if doc.Violations == nil {
		doc.Violations = []repoguard.Violation{}
	}
	if doc.Fixes == nil {
		doc.Fixes = []repoguard.Fix{}
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.Out, string(jsonBytes))
	return err
}

var (
	_ Printer = (*HumanPrinter)(nil)
	_ Printer = (*JSONPrinter)(nil)
)
