package render

import (
	"bufio"
	"fmt"

	"github.com/yaklabco/textree/pkg/tree"
)

// Index row layout: each index is right-justified to indexFieldWidth;
// the value follows after three spaces, or two when the row has no
// indices (the visible root).
const (
	indexFieldWidth = 3

	indexSeparator     = "   "
	indexRootSeparator = "  "
)

// IndexRenderer prints each node's index path followed by its label, one
// node per line.
type IndexRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewIndexRenderer creates a new index-code renderer.
func NewIndexRenderer(opts Options) *IndexRenderer {
	return &IndexRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *IndexRenderer) Render(buffer string, node *tree.Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if r.opts.ShowRoot {
		return r.renderFrom(buffer, node, nil)
	}
	for i, child := range node.Children {
		// The hidden root's row is not printed; the child's own index
		// is prepended to every descendant path instead.
		if err := r.renderFrom(buffer, child, []int{i}); err != nil {
			return err
		}
	}
	return nil
}

func (r *IndexRenderer) renderFrom(buffer string, start *tree.Node, base []int) error {
	acc := tree.Combine(tree.PathAcc{}, tree.ValueAcc{})
	return tree.Traverse(start, tree.DepthFirst, acc, func(_ *tree.Node, value any) error {
		values := value.([]any)
		relPath := values[0].([]int)
		val := values[1].(tree.Value)

		path := make([]int, 0, len(base)+len(relPath))
		path = append(path, base...)
		path = append(path, relPath...)

		for _, idx := range path {
			if _, err := fmt.Fprintf(r.bw, "%*d", indexFieldWidth, idx); err != nil {
				return err
			}
		}
		separator := indexSeparator
		if len(path) == 0 {
			separator = indexRootSeparator
		}
		if _, err := r.bw.WriteString(separator); err != nil {
			return err
		}
		if _, err := r.bw.WriteString(val.Text.Cut(buffer)); err != nil {
			return err
		}
		return r.bw.WriteByte('\n')
	})
}
