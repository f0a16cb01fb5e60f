package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	bplus "bplusindex/bplustree"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCache(Config{NumCounters: 1000, MaxCost: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestRenderMatchesUncachedText(t *testing.T) {
	c := newTestCache(t)
	tree, err := bplus.NewBPlusTree[int64](4)
	require.NoError(t, err)
	for _, k := range []int64{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(k)
	}

	for _, view := range []View{Levels, Outline} {
		want, err := Text(tree, view)
		require.NoError(t, err)

		got, err := c.Render(tree, view)
		require.NoError(t, err)
		require.Equal(t, want, got)

		c.Wait()
		got, err = c.Render(tree, view)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRenderFollowsTreeVersion(t *testing.T) {
	c := newTestCache(t)
	tree, err := bplus.NewBPlusTree[int64](3)
	require.NoError(t, err)
	tree.Insert(1)

	before, err := c.Render(tree, Levels)
	require.NoError(t, err)
	c.Wait()

	tree.Insert(2)
	tree.Insert(3)
	after, err := c.Render(tree, Levels)
	require.NoError(t, err)
	require.NotEqual(t, before, after)
	require.Contains(t, after, "INTERNAL")

	// an absent delete does not change the version, a real one does
	tree.Delete(99)
	same, err := c.Render(tree, Levels)
	require.NoError(t, err)
	require.Equal(t, after, same)

	tree.Delete(3)
	changed, err := c.Render(tree, Levels)
	require.NoError(t, err)
	require.NotContains(t, changed, "INTERNAL")
}

func TestRenderSeparatesTrees(t *testing.T) {
	c := newTestCache(t)
	a, err := bplus.NewBPlusTree[int64](3)
	require.NoError(t, err)
	b, err := bplus.NewBPlusTree[int64](3)
	require.NoError(t, err)
	a.Insert(1)
	b.Insert(2)
	require.Equal(t, a.Version(), b.Version())

	textA, err := c.Render(a, Outline)
	require.NoError(t, err)
	c.Wait()
	textB, err := c.Render(b, Outline)
	require.NoError(t, err)
	require.Equal(t, "- [1#1]\n", textA)
	require.Equal(t, "- [2#1]\n", textB)
}

func TestTextUnknownView(t *testing.T) {
	tree, err := bplus.NewBPlusTree[int64](3)
	require.NoError(t, err)
	_, err = Text(tree, View(9))
	require.Error(t, err)
	require.Equal(t, "unknown", View(9).String())
}
