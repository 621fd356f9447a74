package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/textree/internal/ui/pretty"
	"github.com/yaklabco/textree/pkg/render"
)

// themeNameColumn pads preset names so the glyph samples line up.
const themeNameColumn = 14

func newThemesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List connector theme presets",
		Long: `List every connector theme preset with its four glyphs: branch-mid,
vertical continuation, branch-last, and blank continuation. Dark variants
draw the same glyphs dimmed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				return fmt.Errorf("get color flag: %w", err)
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

			fmt.Fprintln(out, styles.Heading.Render("Available themes"))
			for _, name := range render.ThemeNames() {
				theme, err := render.ResolveTheme(name, styles)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-*s %s\n",
					themeNameColumn, styles.ThemeName.Render(name),
					styles.Glyph.Render(fmt.Sprintf("%q %q %q %q",
						theme.Mid, theme.Vert, theme.Last, theme.Blank)))
			}
			fmt.Fprintln(out, styles.Hint.Render(`Use --theme none for verbatim output.`))
			return nil
		},
	}

	return cmd
}
