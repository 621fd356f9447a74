package render

import (
	"bufio"

	"github.com/yaklabco/textree/pkg/tree"
)

// AsIsRenderer re-emits each node's original indentation, label, and line
// terminator verbatim. Rendering the full tree with the root shown
// reproduces the input byte for byte.
type AsIsRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewAsIsRenderer creates a new as-is renderer.
func NewAsIsRenderer(opts Options) *AsIsRenderer {
	return &AsIsRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *AsIsRenderer) Render(buffer string, node *tree.Node) (err error) {
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

// renderFrom emits the subtree with start as its own self-contained root:
// prefix levels at or above start's depth are never written, so the
// starting node's row carries no indentation.
func (r *AsIsRenderer) renderFrom(buffer string, start *tree.Node) error {
	skip := len(start.Value.Prefixes)
	return tree.Traverse(start, tree.DepthFirst, tree.ValueAcc{}, func(_ *tree.Node, value any) error {
		val := value.(tree.Value)
		for i := skip; i < len(val.Prefixes); i++ {
			if _, err := r.bw.WriteString(val.Prefixes[i].Cut(buffer)); err != nil {
				return err
			}
		}
		if _, err := r.bw.WriteString(val.Text.Cut(buffer)); err != nil {
			return err
		}
		_, err := r.bw.WriteString(val.Suffix.Cut(buffer))
		return err
	})
}
