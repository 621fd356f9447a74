package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yaklabco/textree/internal/ui/pretty"
)

// darkPrefix selects the dim-styled variant of a glyph-based preset.
const darkPrefix = "dark-"

// Theme supplies the four literal strings used to draw tree branch
// connectors.
type Theme struct {
	// Mid marks a branch with a following sibling.
	Mid string
	// Vert continues the column under a non-last ancestor.
	Vert string
	// Last marks a last child's branch.
	Last string
	// Blank continues the column under a last ancestor.
	Blank string
}

// NewTheme builds a theme from four caller-supplied glyphs.
func NewTheme(mid, vert, last, blank string) Theme {
	return Theme{Mid: mid, Vert: vert, Last: last, Blank: blank}
}

// glyphPresets are the presets whose connectors are visible glyphs; each
// also exists as a dark- variant.
//
//nolint:gochecknoglobals // Read-only lookup table.
var glyphPresets = map[string]Theme{
	"ascii":   {Mid: "|-- ", Vert: "|   ", Last: "`-- ", Blank: "    "},
	"unicode": {Mid: "├── ", Vert: "│   ", Last: "└── ", Blank: "    "},
	"rounded": {Mid: "├── ", Vert: "│   ", Last: "╰── ", Blank: "    "},
	"double":  {Mid: "╠══ ", Vert: "║   ", Last: "╚══ ", Blank: "    "},
}

// indentPresets carry no visible connectors and have no dark variants.
//
//nolint:gochecknoglobals // Read-only lookup table.
var indentPresets = map[string]Theme{
	"space-2": {Mid: "  ", Vert: "  ", Last: "  ", Blank: "  "},
	"space-4": {Mid: "    ", Vert: "    ", Last: "    ", Blank: "    "},
	"space-8": {Mid: strings.Repeat(" ", 8), Vert: strings.Repeat(" ", 8), Last: strings.Repeat(" ", 8), Blank: strings.Repeat(" ", 8)},
	"tab":     {Mid: "\t", Vert: "\t", Last: "\t", Blank: "\t"},
}

//nolint:gochecknoglobals // Lazily-built immutable name list.
var (
	themeNames     []string
	themeNamesOnce sync.Once
)

// ThemeNames returns every preset name, dark variants included, sorted.
func ThemeNames() []string {
	themeNamesOnce.Do(func() {
		for name := range glyphPresets {
			themeNames = append(themeNames, name, darkPrefix+name)
		}
		for name := range indentPresets {
			themeNames = append(themeNames, name)
		}
		sort.Strings(themeNames)
	})
	return themeNames
}

// ResolveTheme looks up a preset by name. Dark variants wrap each glyph in
// the dim style; a nil styles renders them plain.
func ResolveTheme(name string, styles *pretty.Styles) (Theme, error) {
	base, dark := strings.CutPrefix(name, darkPrefix)

	if theme, ok := indentPresets[base]; ok && !dark {
		return theme, nil
	}

	theme, ok := glyphPresets[base]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q; valid themes: %s",
			name, strings.Join(ThemeNames(), ", "))
	}

	if dark && styles != nil {
		theme = Theme{
			Mid:   styles.Dim.Render(theme.Mid),
			Vert:  styles.Dim.Render(theme.Vert),
			Last:  styles.Dim.Render(theme.Last),
			Blank: styles.Dim.Render(theme.Blank),
		}
	}
	return theme, nil
}
