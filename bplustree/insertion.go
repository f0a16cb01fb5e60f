package bplus

import (
	"slices"
)

// Insert stores key and returns the tie assigned to it. Duplicate keys are
// accepted; each insert gets a fresh tie, so every stored entry is unique.
func (t *BPlusTree[K]) Insert(key K) uint64 {
	t.tie++
	e := Entry[K]{Key: key, Tie: t.tie}

	var path ancestors
	leaf := t.findLeaf(e, &path)

	i := upperBound(leaf.entries, e)
	leaf.entries = slices.Insert(leaf.entries, i, e)
	t.size++
	t.version++

	if len(leaf.entries) > t.maxEntries() {
		t.splitLeaf(leaf, &path)
	}
	return e.Tie
}
