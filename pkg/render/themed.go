package render

import (
	"bufio"

	"github.com/yaklabco/textree/pkg/tree"
)

// ThemedRenderer draws the tree with branch connector glyphs, one node
// per line.
type ThemedRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewThemedRenderer creates a new themed renderer.
func NewThemedRenderer(opts Options) *ThemedRenderer {
	return &ThemedRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *ThemedRenderer) Render(buffer string, node *tree.Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if r.opts.ShowRoot {
		return r.renderFrom(buffer, node)
	}
	for _, child := range node.Children {
		if err := r.renderFrom(buffer, child); err != nil {
			return err
		}
	}
	return nil
}

// renderFrom draws the subtree with start flush at depth zero. One
// last-child flag is kept per open depth; a node truncates the flags to
// its own depth before pushing its own, so the column state never leaks
// between sibling subtrees.
func (r *ThemedRenderer) renderFrom(buffer string, start *tree.Node) error {
	theme := r.opts.Theme
	var last []bool

	acc := tree.Combine(tree.DepthAcc{}, tree.IsLastAcc{}, tree.ValueAcc{})
	return tree.Traverse(start, tree.DepthFirst, acc, func(_ *tree.Node, value any) error {
		values := value.([]any)
		depth := values[0].(int)
		isLast := values[1].(bool)
		val := values[2].(tree.Value)

		if depth > 0 {
			last = append(last[:depth-1], isLast)
			for _, ancestorLast := range last[:depth-1] {
				glyph := theme.Vert
				if ancestorLast {
					glyph = theme.Blank
				}
				if _, err := r.bw.WriteString(glyph); err != nil {
					return err
				}
			}
			branch := theme.Mid
			if isLast {
				branch = theme.Last
			}
			if _, err := r.bw.WriteString(branch); err != nil {
				return err
			}
		}

		if _, err := r.bw.WriteString(val.Text.Cut(buffer)); err != nil {
			return err
		}
		return r.bw.WriteByte('\n')
	})
}
