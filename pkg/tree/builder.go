package tree

import (
	"github.com/yaklabco/textree/pkg/scan"
	"github.com/yaklabco/textree/pkg/textspan"
)

// rootMarker sits below every possible indentation width so the synthetic
// root is never popped.
const rootMarker = -1

// Build consumes the scanner and reconstructs the tree it describes.
//
// Each line's depth marker is the width of its indentation (the distance
// from line start to value start). A stack of open nodes is kept; a line
// whose marker is less than or equal to an open node's marker closes that
// node's subtree, so equally indented lines become siblings and a line at
// column zero dedents all the way to the root. Every line yields exactly
// one node; there is no failure mode.
func Build(sc *scan.Scanner) *Node {
	root := &Node{}

	type frame struct {
		marker int
		node   *Node
	}
	stack := []frame{{marker: rootMarker, node: root}}

	for sc.Scan() {
		line := sc.Line()
		start := line.Value.Start - line.Span.Start

		for start <= stack[len(stack)-1].marker {
			stack = stack[:len(stack)-1]
		}

		// Rebuild the indentation as the text between consecutive
		// value-start columns of the surviving ancestors, shifted to
		// this line's absolute offsets.
		prefixes := make([]textspan.Span, 0, len(stack))
		prev := 0
		for _, f := range stack[1:] {
			prefixes = append(prefixes, textspan.New(prev, f.marker).Shift(line.Span.Start))
			prev = f.marker
		}
		prefixes = append(prefixes, textspan.New(prev, start).Shift(line.Span.Start))

		node := &Node{Value: Value{
			Prefixes: prefixes,
			Text:     line.Value,
			Suffix:   textspan.New(line.Value.Stop, line.Span.Stop),
		}}

		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{marker: start, node: node})
	}

	return root
}

// BuildString scans text with matcher and builds its tree. A nil matcher
// selects the default.
func BuildString(text string, matcher *scan.Matcher) *Node {
	return Build(scan.NewScanner(text, matcher))
}
