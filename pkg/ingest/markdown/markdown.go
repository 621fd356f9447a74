// Package markdown builds a tree from a Markdown document's heading
// outline: the heading level is the depth marker and the heading text is
// the node's value.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/textree/pkg/textspan"
	"github.com/yaklabco/textree/pkg/tree"
)

// Outline parses source as Markdown and reconstructs its heading tree.
// The result flows through the same resolver and renderers as scanned
// text; heading nodes carry no indentation prefixes, so as-is rendering
// emits the heading values only.
func Outline(source string) *tree.Node {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(source)))

	root := &tree.Node{}

	type frame struct {
		level int
		node  *tree.Node
	}
	stack := []frame{{level: 0, node: root}}

	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		heading, ok := block.(*ast.Heading)
		if !ok {
			continue
		}

		node := &tree.Node{Value: tree.Value{
			Text:   headingSpan(heading),
			Suffix: suffixSpan(heading, source),
		}}

		for heading.Level <= stack[len(stack)-1].level {
			stack = stack[:len(stack)-1]
		}

		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{level: heading.Level, node: node})
	}

	return root
}

// headingSpan covers the heading's text in the source buffer.
func headingSpan(heading *ast.Heading) textspan.Span {
	lines := heading.Lines()
	if lines.Len() == 0 {
		return textspan.New(0, 0)
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return textspan.New(first.Start, last.Stop)
}

// suffixSpan covers the line terminator following the heading text, so
// as-is rendering keeps one heading per line.
func suffixSpan(heading *ast.Heading, source string) textspan.Span {
	stop := headingSpan(heading).Stop
	end := stop
	if end < len(source) && source[end] == '\r' {
		end++
	}
	if end < len(source) && source[end] == '\n' {
		end++
	}
	return textspan.New(stop, end)
}
