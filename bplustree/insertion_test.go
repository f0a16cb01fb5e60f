package bplus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newScenarioTree builds the degree-4 tree used by several tests:
// root [10 20] over leaves [5 6 7] [10 12 17] [20 30].
func newScenarioTree(t *testing.T) *BPlusTree[int] {
	t.Helper()
	tree, err := NewBPlusTree[int](4)
	require.NoError(t, err)
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(k)
		require.NoError(t, tree.Check())
	}
	return tree
}

func TestNewBPlusTreeRejectsSmallDegree(t *testing.T) {
	for _, d := range []int{-1, 0, 1, 2} {
		tree, err := NewBPlusTree[int](d)
		require.Nil(t, tree)
		require.True(t, errors.Is(err, ErrInvalidDegree), "degree %d: %v", d, err)
	}

	tree, err := NewBPlusTree[int](MinDegree)
	require.NoError(t, err)
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 1, tree.Height())
	require.Equal(t, 1, tree.NodeCount())
	require.NoError(t, tree.Check())
}

func TestInsertScenarioDegree4(t *testing.T) {
	tree := newScenarioTree(t)

	require.Equal(t, []int{5, 6, 7, 10, 12, 17, 20, 30}, tree.Traverse())
	require.Equal(t, 2, tree.Height())

	root := tree.node(tree.root)
	require.False(t, root.isLeaf())
	require.Len(t, root.children, 3)
	require.Equal(t, []int{10, 20}, root.keys())

	var buf bytes.Buffer
	require.NoError(t, tree.WriteLevels(&buf))
	want := "Level 0:\n" +
		"  [node 3] INTERNAL keys=[10 20] children=[1 2 4]\n" +
		"Level 1:\n" +
		"  [node 1] LEAF keys=[5 6 7] next=2\n" +
		"  [node 2] LEAF keys=[10 12 17] next=4\n" +
		"  [node 4] LEAF keys=[20 30] next=0\n"
	require.Equal(t, want, buf.String())
}

func TestInsertAssignsIncreasingTies(t *testing.T) {
	tree, err := NewBPlusTree[int](3)
	require.NoError(t, err)

	var last uint64
	for i := 0; i < 50; i++ {
		tie := tree.Insert(i % 7)
		require.Greater(t, tie, last)
		last = tie
	}
	require.Equal(t, 50, tree.Len())

	entries := tree.Entries()
	for i := 1; i < len(entries); i++ {
		require.Negative(t, compareEntry(entries[i-1], entries[i]), "position %d", i)
	}
	require.NoError(t, tree.Check())
}

func TestInsertDescendingGrowsHeight(t *testing.T) {
	for degree := 3; degree <= 9; degree++ {
		tree, err := NewBPlusTree[int](degree)
		require.NoError(t, err)

		for k := 500; k > 0; k-- {
			prevRoot, prevHeight := tree.root, tree.Height()
			tree.Insert(k)
			// the root only changes when it splits, and then height grows by one
			if tree.root != prevRoot {
				require.Equal(t, prevHeight+1, tree.Height())
			} else {
				require.Equal(t, prevHeight, tree.Height())
			}
		}
		require.NoError(t, tree.Check(), "degree %d", degree)
		require.Equal(t, 500, tree.Len())
		require.Greater(t, tree.Height(), 2)
	}
}

func TestInsertStringKeys(t *testing.T) {
	tree, err := NewBPlusTree[string](5)
	require.NoError(t, err)
	for _, k := range []string{"uid=eve", "uid=alice", "uid=dave", "uid=bob", "uid=carol", "uid=alice"} {
		tree.Insert(k)
	}
	require.Equal(t,
		[]string{"uid=alice", "uid=alice", "uid=bob", "uid=carol", "uid=dave", "uid=eve"},
		tree.Traverse())
	require.NoError(t, tree.Check())
}

func TestInsertLogsStructuralEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tree, err := NewBPlusTree[int](3, WithLogger(zap.New(core)))
	require.NoError(t, err)

	for k := 1; k <= 10; k++ {
		tree.Insert(k)
	}
	require.NotZero(t, logs.FilterMessage("split leaf").Len())
	require.NotZero(t, logs.FilterMessage("split internal").Len())
	require.Equal(t, tree.Height()-1, logs.FilterMessage("root split").Len())
}
