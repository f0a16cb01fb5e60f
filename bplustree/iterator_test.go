package bplus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyTree(t *testing.T) {
	tree, err := NewBPlusTree[int](4)
	require.NoError(t, err)

	it := tree.First()
	require.False(t, it.Valid())
	require.False(t, it.Next())
	require.Equal(t, Entry[int]{}, it.Entry())
	require.Empty(t, tree.Traverse())
	require.Empty(t, tree.Entries())
}

func TestIteratorFollowsLeafChain(t *testing.T) {
	tree := newScenarioTree(t)

	var keys []int
	for it := tree.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{5, 6, 7, 10, 12, 17, 20, 30}, keys)

	// restartable
	require.Equal(t, keys, tree.Traverse())
	require.Equal(t, keys, tree.Traverse())
}

func TestLookupAndCount(t *testing.T) {
	tree, err := NewBPlusTree[int](3)
	require.NoError(t, err)
	for _, k := range []int{4, 8, 8, 15, 16, 23, 42, 8, 42} {
		tree.Insert(k)
	}

	require.True(t, tree.Lookup(4))
	require.True(t, tree.Lookup(42))
	require.False(t, tree.Lookup(5))
	require.False(t, tree.Lookup(100))

	require.Equal(t, 3, tree.Count(8))
	require.Equal(t, 2, tree.Count(42))
	require.Equal(t, 1, tree.Count(16))
	require.Equal(t, 0, tree.Count(9))

	tie, ok := tree.FindKey(8)
	require.True(t, ok)
	require.Equal(t, uint64(2), tie)

	_, ok = tree.FindKey(9)
	require.False(t, ok)
}
