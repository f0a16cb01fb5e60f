package bplus

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Delete removes the oldest stored occurrence of key (the one with the
// smallest tie) and reports whether anything was removed. Deleting an absent
// key is a no-op.
func (t *BPlusTree[K]) Delete(key K) bool {
	holder, tie, ok := t.locateFirst(key)
	if !ok {
		return false
	}

	// walk again with the real tie so the ancestor stack matches the leaf
	target := Entry[K]{Key: key, Tie: tie}
	var path ancestors
	leaf := t.findLeaf(target, &path)
	if leaf != holder {
		panic(fmt.Sprintf("bplus: entry %v found in leaf %d but routed to leaf %d", target, holder.id, leaf.id))
	}
	t.deleteFromLeaf(leaf, binarySearch(leaf.entries, target), &path)
	return true
}

// DeleteEntry removes the entry with exactly this key and tie.
func (t *BPlusTree[K]) DeleteEntry(key K, tie uint64) bool {
	target := Entry[K]{Key: key, Tie: tie}
	var path ancestors
	leaf := t.findLeaf(target, &path)
	i := binarySearch(leaf.entries, target)
	if i < 0 {
		return false
	}
	t.deleteFromLeaf(leaf, i, &path)
	return true
}

// locateFirst finds the leaf and tie of the first stored occurrence of key.
// The lookup routes with tie 0, which sorts before every real tie, so the
// occurrence is either in the leaf reached or at the head of the next one.
func (t *BPlusTree[K]) locateFirst(key K) (*Node[K], uint64, bool) {
	leaf := t.findLeaf(Entry[K]{Key: key}, nil)
	if tie, ok := leaf.findKey(key); ok {
		return leaf, tie, true
	}
	if leaf.next == 0 {
		return nil, 0, false
	}
	leaf = t.node(leaf.next)
	if tie, ok := leaf.findKey(key); ok {
		return leaf, tie, true
	}
	return nil, 0, false
}

// deleteFromLeaf removes entry i from leaf and fixes an underflow by
// merging with or borrowing from a sibling, left sibling first.
func (t *BPlusTree[K]) deleteFromLeaf(leaf *Node[K], i int, path *ancestors) {
	leaf.entries = slices.Delete(leaf.entries, i, i+1)
	t.size--
	t.version++

	if leaf.id == t.root || len(leaf.entries) >= t.minLeafEntries() {
		return
	}

	parent := t.node(path.pop())
	idx := parent.childIndex(leaf.id)

	// left/right are the ordered pair (leaf, sibling); sepIdx is the parent
	// entry between them
	var left, right *Node[K]
	var sepIdx int
	if idx > 0 {
		left, right = t.node(parent.children[idx-1]), leaf
		sepIdx = idx - 1
	} else {
		left, right = leaf, t.node(parent.children[idx+1])
		sepIdx = idx
	}

	if len(left.entries)+len(right.entries) < t.degree {
		left.entries = append(left.entries, right.entries...)
		left.next = right.next
		t.log.Debug("merge leaves",
			zap.Int64("into", left.id),
			zap.Int64("removed", right.id),
			zap.Int("entries", len(left.entries)))
		removed := right.id
		t.freeNode(right)
		t.deleteFromParent(parent, removed, path)
		return
	}

	if right == leaf {
		// borrow the last entry of the left sibling
		last := len(left.entries) - 1
		leaf.entries = slices.Insert(leaf.entries, 0, left.entries[last])
		left.entries = slices.Delete(left.entries, last, last+1)
		parent.entries[sepIdx] = leaf.entries[0]
	} else {
		// borrow the first entry of the right sibling
		leaf.entries = append(leaf.entries, right.entries[0])
		right.entries = slices.Delete(right.entries, 0, 1)
		parent.entries[sepIdx] = right.entries[0]
	}
	t.log.Debug("redistribute leaves",
		zap.Int64("left", left.id),
		zap.Int64("right", right.id))
}
