package tree

// Order selects a traversal order.
type Order int

// Traversal orders.
const (
	// DepthFirst visits a parent before its children, children in
	// document order.
	DepthFirst Order = iota

	// BreadthFirst visits nodes level by level.
	BreadthFirst
)

// Visit carries the raw arguments handed to an accumulator for one node:
// the transient parent reference, the node's index within the parent, the
// node itself, and the parent's accumulated value.
type Visit struct {
	Parent *Node
	Index  int
	Node   *Node
	Prev   any
}

// Accumulator computes one value per visited node, threading state from
// parent to child. Root supplies the value for the traversal's starting
// node, for which no parent value exists.
type Accumulator interface {
	Root(start *Node) any
	Visit(v Visit) any
}

// WalkFunc receives each visited node together with its accumulated
// value. Returning a non-nil error stops the traversal immediately.
type WalkFunc func(n *Node, value any) error

// Traverse visits every node of the subtree rooted at start, the starting
// node included, in the given order. The accumulator's output for each
// node is passed to fn as the node is visited.
func Traverse(start *Node, order Order, acc Accumulator, fn WalkFunc) error {
	if start == nil {
		return nil
	}

	startValue := acc.Root(start)
	if err := fn(start, startValue); err != nil {
		return err
	}

	if order == BreadthFirst {
		return traverseBreadth(start, startValue, acc, fn)
	}
	return traverseDepth(start, startValue, acc, fn)
}

func traverseDepth(n *Node, value any, acc Accumulator, fn WalkFunc) error {
	for i, child := range n.Children {
		childValue := acc.Visit(Visit{Parent: n, Index: i, Node: child, Prev: value})
		if err := fn(child, childValue); err != nil {
			return err
		}
		if err := traverseDepth(child, childValue, acc, fn); err != nil {
			return err
		}
	}
	return nil
}

func traverseBreadth(start *Node, startValue any, acc Accumulator, fn WalkFunc) error {
	type item struct {
		node  *Node
		value any
	}
	queue := []item{{node: start, value: startValue}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for i, child := range current.node.Children {
			childValue := acc.Visit(Visit{
				Parent: current.node,
				Index:  i,
				Node:   child,
				Prev:   current.value,
			})
			if err := fn(child, childValue); err != nil {
				return err
			}
			queue = append(queue, item{node: child, value: childValue})
		}
	}
	return nil
}
