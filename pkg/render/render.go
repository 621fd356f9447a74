// Package render emits a reconstructed tree in one of several output
// forms: verbatim as-is text, a themed box-drawing tree, an
// index-annotated listing, or JSON.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/textree/pkg/tree"
)

// bufWriterSize is the buffer size for output writers.
const bufWriterSize = 64 * 1024

// Options configure a renderer.
type Options struct {
	// Writer receives the rendered output. Defaults to stdout.
	Writer io.Writer

	// Theme supplies the branch connector glyphs. Nil selects verbatim
	// as-is rendering for the plain format; the indices and JSON
	// formats ignore it.
	Theme *Theme

	// ShowRoot renders the starting node's own row. When false the
	// renderer recurses over each top-level child instead.
	ShowRoot bool
}

// DefaultOptions returns options writing plain as-is output to stdout.
func DefaultOptions() Options {
	return Options{Writer: os.Stdout}
}

// Renderer writes one rendition of a tree. Rendering never fails for a
// well-formed tree; the returned error reports sink writes only.
type Renderer interface {
	// Render writes the subtree rooted at node. The buffer is the
	// original input text the node's spans index into.
	Render(buffer string, node *tree.Node) error
}

// New creates a Renderer for the given format.
func New(format Format, opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if format == "" {
		format = FormatPlain
	}

	switch format {
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatIndices:
		return NewIndexRenderer(opts), nil
	case FormatPlain:
		if opts.Theme == nil {
			return NewAsIsRenderer(opts), nil
		}
		return NewThemedRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
