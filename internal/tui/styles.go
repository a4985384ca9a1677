package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for report lines.
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SummaryStyle = lipgloss.NewStyle().
			Bold(true)
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "!"
)

// Palette renders text with the styles above, or leaves it untouched when
// output is plain.
type Palette struct {
	styled bool
}

// NewPalette returns a palette; styled selects coloured output.
func NewPalette(styled bool) Palette {
	return Palette{styled: styled}
}

func (p Palette) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p Palette) Success(s string) string { return p.render(SuccessStyle, s) }
func (p Palette) Error(s string) string   { return p.render(ErrorStyle, s) }
func (p Palette) Warning(s string) string { return p.render(WarningStyle, s) }
func (p Palette) Muted(s string) string   { return p.render(MutedStyle, s) }
func (p Palette) Summary(s string) string { return p.render(SummaryStyle, s) }
