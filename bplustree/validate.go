package bplus

import (
	"cmp"
	"fmt"
)

// Check walks the whole tree and returns an error wrapping ErrCorrupt for
// the first broken invariant it finds. It is meant for tests and debugging
// tools; a correct tree always passes.
func (t *BPlusTree[K]) Check() error {
	c := checker[K]{t: t, leafDepth: -1}
	root := t.node(t.root)
	if !root.isLeaf() && len(root.children) < 2 {
		return c.fail(root, "internal root has %d children", len(root.children))
	}
	if err := c.check(root, 0, nil, nil); err != nil {
		return err
	}

	if c.leafDepth+1 != t.height {
		return fmt.Errorf("%w: height is %d but leaves sit at depth %d", ErrCorrupt, t.height, c.leafDepth)
	}
	if c.entries != t.size {
		return fmt.Errorf("%w: Len is %d but %d entries are stored", ErrCorrupt, t.size, c.entries)
	}
	if c.reachable != t.nodes.liveCount() {
		return fmt.Errorf("%w: %d nodes reachable but %d allocated", ErrCorrupt, c.reachable, t.nodes.liveCount())
	}

	// the next chain must visit the leaves in the same order as the walk
	id := c.leaves[0]
	for i, want := range c.leaves {
		if id != want {
			return fmt.Errorf("%w: leaf chain position %d is node %d, expected %d", ErrCorrupt, i, id, want)
		}
		id = t.node(id).next
	}
	if id != 0 {
		return fmt.Errorf("%w: last leaf links to node %d", ErrCorrupt, id)
	}
	return nil
}

type checker[K cmp.Ordered] struct {
	t         *BPlusTree[K]
	leafDepth int
	leaves    []int64
	entries   int
	reachable int
}

func (c *checker[K]) fail(n *Node[K], format string, args ...interface{}) error {
	return fmt.Errorf("%w: node %d: %s", ErrCorrupt, n.id, fmt.Sprintf(format, args...))
}

// check validates n and its subtree. Every entry below n must lie in
// [lo, hi); nil bounds are open.
func (c *checker[K]) check(n *Node[K], depth int, lo, hi *Entry[K]) error {
	t := c.t
	c.reachable++

	if len(n.entries) > t.maxEntries() {
		return c.fail(n, "%d entries exceed capacity %d", len(n.entries), t.maxEntries())
	}
	for i, e := range n.entries {
		if i > 0 && compareEntry(n.entries[i-1], e) >= 0 {
			return c.fail(n, "entries out of order at %d", i)
		}
		if lo != nil && compareEntry(e, *lo) < 0 {
			return c.fail(n, "entry %v below separator %v", e, *lo)
		}
		if hi != nil && compareEntry(e, *hi) >= 0 {
			return c.fail(n, "entry %v not below separator %v", e, *hi)
		}
		if e.Tie == 0 || e.Tie > t.tie {
			return c.fail(n, "entry %v has a tie that was never assigned", e)
		}
	}

	isRoot := n.id == t.root
	if n.isLeaf() {
		if !isRoot && len(n.entries) < t.minLeafEntries() {
			return c.fail(n, "leaf underflow: %d entries, minimum %d", len(n.entries), t.minLeafEntries())
		}
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return c.fail(n, "leaf at depth %d, others at %d", depth, c.leafDepth)
		}
		c.leaves = append(c.leaves, n.id)
		c.entries += len(n.entries)
		return nil
	}

	if len(n.children) != len(n.entries)+1 {
		return c.fail(n, "%d children for %d entries", len(n.children), len(n.entries))
	}
	if !isRoot && len(n.children) < t.minChildren() {
		return c.fail(n, "internal underflow: %d children, minimum %d", len(n.children), t.minChildren())
	}
	for i, id := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.entries[i-1]
		}
		if i < len(n.entries) {
			childHi = &n.entries[i]
		}
		if err := c.check(t.node(id), depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
