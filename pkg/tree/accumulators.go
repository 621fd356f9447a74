package tree

// Built-in accumulators. Every renderer needs a different combination of
// per-node facts threaded through a single traversal pass; these variants
// plus Combine cover them without duplicating the traversal logic.

// NodeAcc yields the visited node itself.
type NodeAcc struct{}

// Root implements Accumulator.
func (NodeAcc) Root(start *Node) any { return start }

// Visit implements Accumulator.
func (NodeAcc) Visit(v Visit) any { return v.Node }

// ParentAcc yields the visited node's parent, nil for the starting node.
type ParentAcc struct{}

// Root implements Accumulator.
func (ParentAcc) Root(*Node) any { return (*Node)(nil) }

// Visit implements Accumulator.
func (ParentAcc) Visit(v Visit) any { return v.Parent }

// IsLastAcc yields whether the node is its parent's last child. The
// starting node counts as last.
type IsLastAcc struct{}

// Root implements Accumulator.
func (IsLastAcc) Root(*Node) any { return true }

// Visit implements Accumulator.
func (IsLastAcc) Visit(v Visit) any { return v.Index == len(v.Parent.Children)-1 }

// ValueAcc yields the node's Value.
type ValueAcc struct{}

// Root implements Accumulator.
func (ValueAcc) Root(start *Node) any { return start.Value }

// Visit implements Accumulator.
func (ValueAcc) Visit(v Visit) any { return v.Node.Value }

// PathAcc yields the node's index path from the traversal start. The
// starting node's path is empty.
type PathAcc struct{}

// Root implements Accumulator.
func (PathAcc) Root(*Node) any { return []int{} }

// Visit implements Accumulator.
func (PathAcc) Visit(v Visit) any {
	parentPath := v.Prev.([]int)
	path := make([]int, len(parentPath)+1)
	copy(path, parentPath)
	path[len(parentPath)] = v.Index
	return path
}

// DepthAcc yields the node's depth relative to the traversal start,
// which sits at depth zero.
type DepthAcc struct{}

// Root implements Accumulator.
func (DepthAcc) Root(*Node) any { return 0 }

// Visit implements Accumulator.
func (DepthAcc) Visit(v Visit) any { return v.Prev.(int) + 1 }

// ArgsAcc yields the raw Visit tuple.
type ArgsAcc struct{}

// Root implements Accumulator.
func (ArgsAcc) Root(start *Node) any { return Visit{Node: start} }

// Visit implements Accumulator.
func (ArgsAcc) Visit(v Visit) any { return v }

// Combine builds an accumulator whose per-node value is a []any holding
// each sub-accumulator's value in argument order. Each sub-accumulator
// sees its own previous value and supplies its own default for the
// starting node.
func Combine(accs ...Accumulator) Accumulator {
	return combined{accs: accs}
}

type combined struct {
	accs []Accumulator
}

// Root implements Accumulator.
func (c combined) Root(start *Node) any {
	values := make([]any, len(c.accs))
	for i, acc := range c.accs {
		values[i] = acc.Root(start)
	}
	return values
}

// Visit implements Accumulator.
func (c combined) Visit(v Visit) any {
	prev := v.Prev.([]any)
	values := make([]any, len(c.accs))
	for i, acc := range c.accs {
		values[i] = acc.Visit(Visit{
			Parent: v.Parent,
			Index:  v.Index,
			Node:   v.Node,
			Prev:   prev[i],
		})
	}
	return values
}
