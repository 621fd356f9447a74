package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// componentEscape forces text interpretation of an otherwise
// numeric-looking path component, e.g. `\42` selects the child whose
// label is "42".
const componentEscape = `\`

// Component is one step in a subtree-selection path: either a numeric
// child index or a literal child label.
type Component struct {
	Index  int
	Text   string
	IsText bool
}

// String returns the component as the user would have written it.
func (c Component) String() string {
	if c.IsText {
		return c.Text
	}
	return strconv.Itoa(c.Index)
}

// ParseComponent interprets raw as an integer index unless it carries the
// leading escape or does not parse as an integer, in which case it is a
// literal label. Parsing cannot fail: any string is a valid label.
func ParseComponent(raw string) Component {
	if rest, ok := strings.CutPrefix(raw, componentEscape); ok {
		return Component{Text: rest, IsText: true}
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return Component{Index: i}
	}
	return Component{Text: raw, IsText: true}
}

// ParsePath parses each argument into a path component.
func ParsePath(args []string) []Component {
	path := make([]Component, len(args))
	for i, arg := range args {
		path[i] = ParseComponent(arg)
	}
	return path
}

// OutOfRangeError reports a numeric path component beyond the bounds of a
// node's child list.
type OutOfRangeError struct {
	Index int
	Count int
}

// Error implements error.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("path index %d out of range: node has %d children", e.Index, e.Count)
}

// NotFoundError reports a text path component matching none of a node's
// children. Available lists the labels that were present.
type NotFoundError struct {
	Want      string
	Available []string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no child named %q; available: %s", e.Want, strings.Join(e.Available, " "))
}

// BadComponentError reports a path component that is neither a valid
// index nor resolvable text. ParseComponent's fallback to literal labels
// makes it unreachable in practice; it exists so callers can exhaustively
// classify resolution failures.
type BadComponentError struct {
	Raw string
}

// Error implements error.
func (e *BadComponentError) Error() string {
	return fmt.Sprintf("bad path component %q", e.Raw)
}

// Resolve walks from start along path. An index component selects the
// child at that position; a text component selects the first child whose
// label equals it. The first failure aborts the walk; there is no
// best-effort resolution.
func Resolve(buffer string, start *Node, path []Component) (*Node, error) {
	node := start
	for _, comp := range path {
		next, err := resolveChild(buffer, node, comp)
		if err != nil {
			return nil, err
		}
		node = next
	}
	return node, nil
}

func resolveChild(buffer string, node *Node, comp Component) (*Node, error) {
	if !comp.IsText {
		if comp.Index < 0 || comp.Index >= len(node.Children) {
			return nil, &OutOfRangeError{Index: comp.Index, Count: len(node.Children)}
		}
		return node.Children[comp.Index], nil
	}

	for _, child := range node.Children {
		if child.Text(buffer) == comp.Text {
			return child, nil
		}
	}
	return nil, &NotFoundError{Want: comp.Text, Available: node.ChildTexts(buffer)}
}
