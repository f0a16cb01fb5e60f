package bplus

// findKey returns the tie of the first entry in n whose key equals key.
func (n *Node[K]) findKey(key K) (uint64, bool) {
	i := lowerBoundKey(n.entries, key)
	if i < len(n.entries) && n.entries[i].Key == key {
		return n.entries[i].Tie, true
	}
	return 0, false
}

// FindKey returns the smallest tie stored for key.
func (t *BPlusTree[K]) FindKey(key K) (uint64, bool) {
	_, tie, ok := t.locateFirst(key)
	return tie, ok
}

// Lookup reports whether at least one entry with key is stored.
func (t *BPlusTree[K]) Lookup(key K) bool {
	_, _, ok := t.locateFirst(key)
	return ok
}

// Count returns how many entries with key are stored.
func (t *BPlusTree[K]) Count(key K) int {
	leaf, _, ok := t.locateFirst(key)
	if !ok {
		return 0
	}
	n := 0
	for i := lowerBoundKey(leaf.entries, key); ; i++ {
		if i == len(leaf.entries) {
			if leaf.next == 0 {
				return n
			}
			leaf, i = t.node(leaf.next), 0
		}
		if leaf.entries[i].Key != key {
			return n
		}
		n++
	}
}
