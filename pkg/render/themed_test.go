package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textree/pkg/render"
	"github.com/yaklabco/textree/pkg/tree"
)

func renderThemed(t *testing.T, buffer string, node *tree.Node, themeName string, showRoot bool) string {
	t.Helper()
	theme, err := render.ResolveTheme(themeName, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	r := render.NewThemedRenderer(render.Options{Writer: &out, Theme: &theme, ShowRoot: showRoot})
	require.NoError(t, r.Render(buffer, node))
	return out.String()
}

func TestThemed_Unicode(t *testing.T) {
	t.Parallel()

	text := "a\n  b\n    c\n  d\n"
	root := tree.BuildString(text, nil)

	want := "" +
		"a\n" +
		"├── b\n" +
		"│   └── c\n" +
		"└── d\n"
	assert.Equal(t, want, renderThemed(t, text, root, "unicode", false))
}

func TestThemed_MultipleTopLevel(t *testing.T) {
	t.Parallel()

	text := "a\n  b\nc\n"
	root := tree.BuildString(text, nil)

	want := "" +
		"a\n" +
		"└── b\n" +
		"c\n"
	assert.Equal(t, want, renderThemed(t, text, root, "unicode", false))
}

func TestThemed_BlankUnderLastAncestor(t *testing.T) {
	t.Parallel()

	text := "a\n  b\n    c\n      d\n"
	root := tree.BuildString(text, nil)

	b, err := tree.Resolve(text, root, tree.ParsePath([]string{"0", "0"}))
	require.NoError(t, err)

	want := "" +
		"b\n" +
		"└── c\n" +
		"    └── d\n"
	assert.Equal(t, want, renderThemed(t, text, b, "unicode", true))
}

func TestThemed_SiblingSubtreesDoNotLeakColumns(t *testing.T) {
	t.Parallel()

	text := "r\n  a\n    x\n  b\n    y\n"
	root := tree.BuildString(text, nil)

	want := "" +
		"r\n" +
		"├── a\n" +
		"│   └── x\n" +
		"└── b\n" +
		"    └── y\n"
	assert.Equal(t, want, renderThemed(t, text, root, "unicode", false))
}

func TestThemed_Presets(t *testing.T) {
	t.Parallel()

	text := "a\n  b\n  c\n"
	root := tree.BuildString(text, nil)

	tests := []struct {
		theme string
		want  string
	}{
		{theme: "ascii", want: "a\n|-- b\n`-- c\n"},
		{theme: "rounded", want: "a\n├── b\n╰── c\n"},
		{theme: "double", want: "a\n╠══ b\n╚══ c\n"},
		{theme: "space-2", want: "a\n  b\n  c\n"},
		{theme: "tab", want: "a\n\tb\n\tc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderThemed(t, text, root, tt.theme, false))
		})
	}
}

func TestThemed_Idempotent(t *testing.T) {
	t.Parallel()

	// Drawing, re-parsing the drawing, and drawing again is a fixed
	// point: connector glyphs count as indentation for the default
	// matcher, so depth survives the round trip.
	text := "a\n  b\n    c\n  d\ne\n"

	for _, theme := range []string{"unicode", "rounded", "double"} {
		t.Run(theme, func(t *testing.T) {
			t.Parallel()
			first := renderThemed(t, text, tree.BuildString(text, nil), theme, false)
			second := renderThemed(t, first, tree.BuildString(first, nil), theme, false)
			assert.Equal(t, first, second)
		})
	}
}
