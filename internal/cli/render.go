package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/textree/internal/configloader"
	"github.com/yaklabco/textree/internal/logging"
	"github.com/yaklabco/textree/internal/ui/pretty"
	"github.com/yaklabco/textree/pkg/config"
	"github.com/yaklabco/textree/pkg/fsutil"
	"github.com/yaklabco/textree/pkg/ingest/markdown"
	"github.com/yaklabco/textree/pkg/render"
	"github.com/yaklabco/textree/pkg/scan"
	"github.com/yaklabco/textree/pkg/tree"
)

// themeNone disables connector glyphs and selects verbatim rendering.
const themeNone = "none"

// glyphCount is the number of literal strings a theme override needs:
// branch-mid, vertical, branch-last, blank.
const glyphCount = 4

type renderFlags struct {
	input    string
	output   string
	theme    string
	glyphs   []string
	format   string
	pattern  string
	last     bool
	after    bool
	showRoot bool
	hideRoot bool
	markdown bool
}

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVarP(&flags.input, "input", "i", "",
		"read input from file instead of stdin")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to file (atomically) instead of stdout")
	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "",
		"connector theme preset, or \"none\" for verbatim output")
	cmd.Flags().StringSliceVar(&flags.glyphs, "glyphs", nil,
		"four literal connector strings overriding the theme: mid,vert,last,blank")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"output format: plain, indices, json")
	cmd.Flags().StringVarP(&flags.pattern, "match", "m", "",
		"regular expression locating where a line's value starts")
	cmd.Flags().BoolVar(&flags.last, "last", false,
		"use the last match on each line instead of the first")
	cmd.Flags().BoolVar(&flags.after, "after", false,
		"start the value just past the match instead of at it")
	cmd.Flags().BoolVar(&flags.showRoot, "show-root", false,
		"render the root node's own row")
	cmd.Flags().BoolVar(&flags.hideRoot, "hide-root", false,
		"never render the root node's own row")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false,
		"build the tree from the input's Markdown heading outline")

	cmd.MarkFlagsMutuallyExclusive("show-root", "hide-root")
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldTheme, cfg.Theme,
		logging.FieldFormat, cfg.Format,
		logging.FieldShowRoot, cfg.ShowRoot,
		logging.FieldMarkdown, cfg.Markdown,
	)

	buffer, err := readInput(cmd, flags.input)
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	root, err := buildTree(buffer, cfg)
	if err != nil {
		return err
	}
	logger.Debug("tree built",
		logging.FieldBytes, len(buffer),
		logging.FieldNodes, root.Count()-1,
	)

	path := tree.ParsePath(args)
	node, err := tree.Resolve(buffer, root, path)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	out := cmd.OutOrStdout()
	colorMode := cfg.Color
	if flags.output != "" {
		colorMode = "never"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	theme, err := resolveTheme(cfg.Theme, flags.glyphs, styles)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	opts := render.Options{
		Writer:   out,
		Theme:    theme,
		ShowRoot: rootVisible(cfg.ShowRoot, len(path) > 0),
	}

	if flags.output != "" {
		return renderToFile(flags.output, format, opts, buffer, node)
	}

	renderer, err := render.New(format, opts)
	if err != nil {
		return err
	}
	if err := renderer.Render(buffer, node); err != nil {
		return errors.Join(ErrIO, err)
	}

	// JSON carries no trailing newline unless the sink is interactive.
	if format == render.FormatJSON {
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fmt.Fprintln(out)
		}
	}
	return nil
}

// loadConfig merges config files with explicitly changed command flags.
func loadConfig(cmd *cobra.Command, flags *renderFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}
	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logging.Default().Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("match") {
		cfg.Match.Pattern = flags.pattern
	}
	if changed("last") {
		cfg.Match.Last = flags.last
	}
	if changed("after") {
		cfg.Match.After = flags.after
	}
	if changed("markdown") {
		cfg.Markdown = flags.markdown
	}
	if changed("color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}
	if flags.showRoot {
		cfg.ShowRoot = config.RootShow
	}
	if flags.hideRoot {
		cfg.ShowRoot = config.RootHide
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrConfig, err)
	}
	return cfg, nil
}

// readInput returns the whole input buffer: a file when path is set,
// stdin otherwise.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.Default().Info("reading tree from terminal; end input with ctrl-d")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func buildTree(buffer string, cfg *config.Config) (*tree.Node, error) {
	if cfg.Markdown {
		return markdown.Outline(buffer), nil
	}

	matcher := scan.DefaultMatcher()
	custom := (cfg.Match.Pattern != "" && cfg.Match.Pattern != scan.DefaultPattern) ||
		cfg.Match.Last || cfg.Match.After
	if custom {
		var err error
		pattern := cfg.Match.Pattern
		if pattern == "" {
			pattern = scan.DefaultPattern
		}
		matcher, err = scan.NewMatcher(pattern, cfg.Match.Last, cfg.Match.After)
		if err != nil {
			return nil, errors.Join(ErrUsage, err)
		}
	}
	return tree.BuildString(buffer, matcher), nil
}

// resolveTheme picks the connector glyphs: an explicit override wins,
// then the named preset; "none" selects verbatim as-is rendering.
func resolveTheme(name string, glyphs []string, styles *pretty.Styles) (*render.Theme, error) {
	if len(glyphs) > 0 {
		if len(glyphs) != glyphCount {
			return nil, fmt.Errorf("--glyphs needs exactly %d strings (mid,vert,last,blank), got %d",
				glyphCount, len(glyphs))
		}
		theme := render.NewTheme(glyphs[0], glyphs[1], glyphs[2], glyphs[3])
		return &theme, nil
	}

	if name == themeNone || name == "asis" {
		return nil, nil
	}

	theme, err := render.ResolveTheme(name, styles)
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// rootVisible resolves the auto mode: the root row appears only when a
// subtree was selected.
func rootVisible(mode string, hasPath bool) bool {
	switch mode {
	case config.RootShow:
		return true
	case config.RootHide:
		return false
	default:
		return hasPath
	}
}

// renderToFile renders into memory and writes the result atomically.
func renderToFile(path string, format render.Format, opts render.Options, buffer string, node *tree.Node) error {
	var buf bytes.Buffer
	opts.Writer = &buf

	renderer, err := render.New(format, opts)
	if err != nil {
		return err
	}
	if err := renderer.Render(buffer, node); err != nil {
		return errors.Join(ErrIO, err)
	}

	if err := fsutil.WriteAtomic(path, buf.Bytes(), 0); err != nil {
		return errors.Join(ErrIO, err)
	}
	logging.Default().Debug("output written", logging.FieldOutput, path)
	return nil
}
