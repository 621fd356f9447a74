package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/textree/pkg/tree"
)

// JSONRenderer serializes the tree as a single JSON document: a leaf
// becomes a string, an inner node a single-key object mapping its label
// to the array of serialized children. No trailing newline is written;
// interactive sinks append one at the CLI layer.
type JSONRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(buffer string, node *tree.Node) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var doc any
	if r.opts.ShowRoot {
		doc = encodeNode(buffer, node)
	} else {
		// A hidden root emits the bare array of its children.
		children := make([]any, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, encodeNode(buffer, child))
		}
		doc = children
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = r.bw.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

func encodeNode(buffer string, n *tree.Node) any {
	label := n.Text(buffer)
	if !n.HasChildren() {
		return label
	}

	children := make([]any, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, encodeNode(buffer, child))
	}
	return map[string]any{label: children}
}
