package bplus

import "cmp"

// Iterator walks the leaf chain in ascending (key, tie) order. The tree
// must not be modified while an iterator is in use.
type Iterator[K cmp.Ordered] struct {
	tree  *BPlusTree[K]
	leaf  *Node[K]
	index int
	valid bool
}

// First positions a new iterator at the smallest entry.
func (t *BPlusTree[K]) First() *Iterator[K] {
	it := &Iterator[K]{tree: t, leaf: t.leftmostLeaf(), index: -1, valid: true}
	it.Next()
	return it
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[K]) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	for it.index >= len(it.leaf.entries) {
		// move to next leaf
		if it.leaf.next == 0 {
			it.valid = false
			return false
		}
		it.leaf = it.tree.node(it.leaf.next)
		it.index = 0
	}
	return true
}

func (it *Iterator[K]) Valid() bool {
	return it.valid
}

// Entry returns the current entry.
func (it *Iterator[K]) Entry() Entry[K] {
	if !it.valid {
		return Entry[K]{}
	}
	return it.leaf.entries[it.index]
}

// Key returns the current key.
func (it *Iterator[K]) Key() K {
	return it.Entry().Key
}

// Traverse returns every stored key in ascending order, duplicates included.
func (t *BPlusTree[K]) Traverse() []K {
	keys := make([]K, 0, t.size)
	for it := t.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Entries is Traverse with the ties.
func (t *BPlusTree[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, t.size)
	for it := t.First(); it.Valid(); it.Next() {
		out = append(out, it.Entry())
	}
	return out
}
