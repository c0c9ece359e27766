// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Check status styles
	Pass StatusStyle
	Fail StatusStyle

	// Report components
	FilePath   lipgloss.Style
	Diagnostic lipgloss.Style
	Example    lipgloss.Style
	Location   lipgloss.Style

	// Verdict styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// StatusStyle pairs a status label with its rendering.
type StatusStyle struct {
	Label string
	Style lipgloss.Style
}

// Render renders the status label.
func (s StatusStyle) Render() string {
	return s.Style.Render(s.Label)
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Pass: StatusStyle{Label: "PASS", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)},
		Fail: StatusStyle{Label: "FAIL", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)},

		FilePath:   lipgloss.NewStyle().Bold(true),
		Diagnostic: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Example:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Pass:       StatusStyle{Label: "PASS", Style: plain},
		Fail:       StatusStyle{Label: "FAIL", Style: plain},
		FilePath:   plain,
		Diagnostic: plain,
		Example:    plain,
		Location:   plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
