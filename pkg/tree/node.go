// Package tree reconstructs a rooted ordered tree from scanned lines and
// provides traversal and subtree resolution over it.
package tree

import "github.com/yaklabco/textree/pkg/textspan"

// Value is a node's payload: spans into the original text buffer.
type Value struct {
	// Prefixes covers the line's raw indentation, split at each
	// ancestor's value-start column, in root-to-node order. The final
	// entry is the node's own indentation chunk. All offsets are
	// buffer-absolute.
	Prefixes []textspan.Span

	// Text covers the node's label.
	Text textspan.Span

	// Suffix covers everything after the label, line terminator included.
	Suffix textspan.Span
}

// Node is one node of the reconstructed tree. Children are kept in
// original line order. Nodes hold no parent pointer; the parent is
// supplied transiently during traversal.
//
// The root node is synthetic: it has a zero Value and corresponds to no
// input line.
type Node struct {
	Value    Value
	Children []*Node
}

// Text returns the node's label text from buffer.
func (n *Node) Text(buffer string) string {
	return n.Value.Text.Cut(buffer)
}

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// ChildTexts returns the labels of the node's direct children, in order.
func (n *Node) ChildTexts(buffer string) []string {
	texts := make([]string, len(n.Children))
	for i, child := range n.Children {
		texts[i] = child.Text(buffer)
	}
	return texts
}

// Count returns the number of nodes in the subtree, the node included.
func (n *Node) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}
