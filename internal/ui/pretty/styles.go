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
	// Themes listing
	ThemeName lipgloss.Style
	Glyph     lipgloss.Style
	Heading   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
	Hint lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		ThemeName: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Glyph:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		ThemeName: plain,
		Glyph:     plain,
		Heading:   plain,
		Dim:       plain,
		Bold:      plain,
		Hint:      plain,
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
