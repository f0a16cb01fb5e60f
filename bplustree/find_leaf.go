package bplus

// ancestors records the internal nodes visited on the way from the root to a
// leaf. It lives for one operation and is popped while a split or an
// underflow is pushed back up.
type ancestors []int64

func (a *ancestors) push(id int64) {
	if a != nil {
		*a = append(*a, id)
	}
}

func (a *ancestors) pop() int64 {
	s := *a
	if len(s) == 0 {
		panic("bplus: ancestor stack exhausted below the root")
	}
	id := s[len(s)-1]
	*a = s[:len(s)-1]
	return id
}

// findLeaf descends from the root to the leaf that owns target. At each
// internal node it follows the first child whose separator is strictly
// greater than target. Visited internal nodes are pushed onto path when
// path is non-nil.
func (t *BPlusTree[K]) findLeaf(target Entry[K], path *ancestors) *Node[K] {
	n := t.node(t.root)
	for !n.isLeaf() {
		path.push(n.id)
		n = t.node(n.children[upperBound(n.entries, target)])
	}
	return n
}

// leftmostLeaf is the head of the leaf chain.
func (t *BPlusTree[K]) leftmostLeaf() *Node[K] {
	n := t.node(t.root)
	for !n.isLeaf() {
		n = t.node(n.children[0])
	}
	return n
}
