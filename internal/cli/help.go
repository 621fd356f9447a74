// Package cli provides the Cobra command structure for textree.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/textree/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Example    lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{Command: plain, Heading: plain, Subcommand: plain, Example: plain}
	}
	return &HelpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// ApplyToCommand installs the styled usage template on cmd and its
// subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cobra.AddTemplateFunc("styleHeading", h.styles.Heading.Render)
	cobra.AddTemplateFunc("styleCommand", h.styles.Command.Render)
	cobra.AddTemplateFunc("styleSubcommand", h.styles.Subcommand.Render)
	cobra.AddTemplateFunc("styleExample", h.styles.Example.Render)
	cmd.SetUsageTemplate(usageTemplate)
}

// usageTemplate mirrors Cobra's default layout with styled section
// headings. Cobra's built-in template funcs (rpad,
// trimTrailingWhitespaces) remain available.
const usageTemplate = `{{ styleHeading "Usage:" }}{{if .Runnable}}
  {{ styleCommand .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ styleCommand (print .CommandPath " [command]") }}{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{.NameAndAliases}}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{.Short}}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end}}
`
