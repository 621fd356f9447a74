package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textree/pkg/tree"
)

const traverseFixture = "a\n  b\n    c\n  d\ne\n"

func collectTexts(t *testing.T, start *tree.Node, order tree.Order) []string {
	t.Helper()
	var texts []string
	err := tree.Traverse(start, order, tree.NodeAcc{}, func(n *tree.Node, _ any) error {
		texts = append(texts, n.Text(traverseFixture))
		return nil
	})
	require.NoError(t, err)
	return texts
}

func TestTraverse_DepthFirst(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)
	assert.Equal(t, []string{"", "a", "b", "c", "d", "e"}, collectTexts(t, root, tree.DepthFirst))
}

func TestTraverse_BreadthFirst(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)
	assert.Equal(t, []string{"", "a", "e", "b", "d", "c"}, collectTexts(t, root, tree.BreadthFirst))
}

func TestTraverse_OrdersVisitSameNodes(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)

	depth := collectTexts(t, root, tree.DepthFirst)
	breadth := collectTexts(t, root, tree.BreadthFirst)
	assert.ElementsMatch(t, depth, breadth)
	assert.Len(t, depth, root.Count())
}

func TestTraverse_StopsOnError(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)
	sentinel := errors.New("stop")

	visited := 0
	err := tree.Traverse(root, tree.DepthFirst, tree.NodeAcc{}, func(n *tree.Node, _ any) error {
		visited++
		if n.Text(traverseFixture) == "b" {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, visited)
}

func TestTraverse_NilStart(t *testing.T) {
	t.Parallel()

	err := tree.Traverse(nil, tree.DepthFirst, tree.NodeAcc{}, func(*tree.Node, any) error {
		t.Fatal("walk func must not be called")
		return nil
	})
	assert.NoError(t, err)
}

func TestAccumulators(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)

	t.Run("path", func(t *testing.T) {
		t.Parallel()
		paths := map[string][]int{}
		err := tree.Traverse(root, tree.DepthFirst, tree.PathAcc{}, func(n *tree.Node, value any) error {
			paths[n.Text(traverseFixture)] = value.([]int)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{}, paths[""])
		assert.Equal(t, []int{0}, paths["a"])
		assert.Equal(t, []int{0, 0, 0}, paths["c"])
		assert.Equal(t, []int{0, 1}, paths["d"])
		assert.Equal(t, []int{1}, paths["e"])
	})

	t.Run("depth", func(t *testing.T) {
		t.Parallel()
		depths := map[string]int{}
		err := tree.Traverse(root, tree.BreadthFirst, tree.DepthAcc{}, func(n *tree.Node, value any) error {
			depths[n.Text(traverseFixture)] = value.(int)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, depths[""])
		assert.Equal(t, 1, depths["a"])
		assert.Equal(t, 2, depths["d"])
		assert.Equal(t, 3, depths["c"])
	})

	t.Run("parent", func(t *testing.T) {
		t.Parallel()
		parents := map[string]*tree.Node{}
		err := tree.Traverse(root, tree.DepthFirst, tree.ParentAcc{}, func(n *tree.Node, value any) error {
			parents[n.Text(traverseFixture)] = value.(*tree.Node)
			return nil
		})
		require.NoError(t, err)
		assert.Nil(t, parents[""])
		assert.Same(t, root, parents["a"])
		assert.Same(t, root.Children[0], parents["b"])
	})

	t.Run("is last", func(t *testing.T) {
		t.Parallel()
		last := map[string]bool{}
		err := tree.Traverse(root, tree.DepthFirst, tree.IsLastAcc{}, func(n *tree.Node, value any) error {
			last[n.Text(traverseFixture)] = value.(bool)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, last[""])
		assert.False(t, last["a"])
		assert.True(t, last["e"])
		assert.False(t, last["b"])
		assert.True(t, last["d"])
		assert.True(t, last["c"])
	})

	t.Run("args", func(t *testing.T) {
		t.Parallel()
		var visits []tree.Visit
		err := tree.Traverse(root, tree.DepthFirst, tree.ArgsAcc{}, func(_ *tree.Node, value any) error {
			visits = append(visits, value.(tree.Visit))
			return nil
		})
		require.NoError(t, err)
		require.Len(t, visits, root.Count())
		assert.Same(t, root, visits[0].Node)
		assert.Nil(t, visits[0].Parent)
		assert.Same(t, root, visits[1].Parent)
		assert.Equal(t, 0, visits[1].Index)
	})
}

func TestCombine(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)
	acc := tree.Combine(tree.DepthAcc{}, tree.IsLastAcc{}, tree.PathAcc{})

	type fact struct {
		depth int
		last  bool
		path  []int
	}
	facts := map[string]fact{}

	err := tree.Traverse(root, tree.DepthFirst, acc, func(n *tree.Node, value any) error {
		values := value.([]any)
		facts[n.Text(traverseFixture)] = fact{
			depth: values[0].(int),
			last:  values[1].(bool),
			path:  values[2].([]int),
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, fact{depth: 0, last: true, path: []int{}}, facts[""])
	assert.Equal(t, fact{depth: 3, last: true, path: []int{0, 0, 0}}, facts["c"])
	assert.Equal(t, fact{depth: 2, last: true, path: []int{0, 1}}, facts["d"])
}

func TestTraverse_FromSubtree(t *testing.T) {
	t.Parallel()

	root := tree.BuildString(traverseFixture, nil)
	a := root.Children[0]

	var texts []string
	err := tree.Traverse(a, tree.DepthFirst, tree.PathAcc{}, func(n *tree.Node, value any) error {
		texts = append(texts, n.Text(traverseFixture))
		if n == a {
			assert.Empty(t, value.([]int))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts)
}
