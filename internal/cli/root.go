package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textree/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root textree command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	flags := &renderFlags{}

	rootCmd := &cobra.Command{
		Use:   "textree [path...]",
		Short: "Reshape text whose layout encodes a tree",
		Long: `textree reads text whose visual layout encodes a tree - indentation,
box-drawing prefixes, or a caller-supplied delimiter pattern - rebuilds the
tree, and re-emits it as verbatim text, a themed box-drawing tree, an
index-annotated listing, or JSON.

Positional arguments select a subtree before rendering: each is a numeric
child index or a child's literal text (prefix with \ to force text for a
numeric-looking label).`,
		Example: `  textree < notes.txt                 # redraw with unicode connectors
  textree -t ascii < notes.txt        # classic pipe-and-dash connectors
  textree -f json < notes.txt         # JSON encoding
  textree -f indices < notes.txt      # index-annotated listing
  textree 0 2 < notes.txt             # third child of the first child
  textree src main.go < notes.txt     # navigate by child text
  textree --markdown -i README.md     # tree of a Markdown heading outline`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addRenderFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
