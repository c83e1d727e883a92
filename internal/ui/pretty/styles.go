// Package pretty provides lipgloss-styled terminal rendering for event
// streams, diagnostics, and run summaries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Event components.
	Kind    lipgloss.Style
	Name    lipgloss.Style
	Payload lipgloss.Style
	Span    lipgloss.Style
	Depth   lipgloss.Style

	// Diagnostics.
	Error    lipgloss.Style
	Code     lipgloss.Style
	FilePath lipgloss.Style
	Location lipgloss.Style

	// Summary.
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Kind: plain, Name: plain, Payload: plain, Span: plain, Depth: plain,
			Error: plain, Code: plain, FilePath: plain, Location: plain,
			SummaryTitle: plain, SummaryValue: plain, Success: plain, Failure: plain,
			Dim: plain, Bold: plain,
		}
	}
	return &Styles{
		Kind:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Payload: lipgloss.NewStyle(),
		Span:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Depth:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode
// color is enabled only for a TTY with NO_COLOR unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the writer's terminal, or fallback
// when the writer is not a terminal.
func TerminalWidth(writer io.Writer, fallback int) int {
	f, ok := writer.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
