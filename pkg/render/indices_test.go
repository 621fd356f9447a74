package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textree/pkg/render"
	"github.com/yaklabco/textree/pkg/tree"
)

func renderIndices(t *testing.T, buffer string, node *tree.Node, showRoot bool) string {
	t.Helper()
	var out bytes.Buffer
	r := render.NewIndexRenderer(render.Options{Writer: &out, ShowRoot: showRoot})
	require.NoError(t, r.Render(buffer, node))
	return out.String()
}

func TestIndices_HiddenRoot(t *testing.T) {
	t.Parallel()

	text := "a\n  b\n  c\nd\n"
	root := tree.BuildString(text, nil)

	want := "" +
		"  0   a\n" +
		"  0  0   b\n" +
		"  0  1   c\n" +
		"  1   d\n"
	assert.Equal(t, want, renderIndices(t, text, root, false))
}

func TestIndices_ShownRoot(t *testing.T) {
	t.Parallel()

	text := "a\n  b\n  c\n"
	root := tree.BuildString(text, nil)

	a, err := tree.Resolve(text, root, tree.ParsePath([]string{"0"}))
	require.NoError(t, err)

	// The visible root has no indices; its value follows a two-space
	// separator so the column lines up with indexed rows.
	want := "" +
		"  a\n" +
		"  0   b\n" +
		"  1   c\n"
	assert.Equal(t, want, renderIndices(t, text, a, true))
}

func TestIndices_WideIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.WriteString("p\n")
	for range 12 {
		buf.WriteString("  x\n")
	}
	text := buf.String()
	root := tree.BuildString(text, nil)

	out := renderIndices(t, text, root, false)
	assert.Contains(t, out, "  0 11   x\n")
}
