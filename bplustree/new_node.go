package bplus

// newNode creates a node of the given type and registers it in the arena.
// Slices get one spare slot so a node can overflow by one before it splits.
func (t *BPlusTree[K]) newNode(nodeType NodeType) *Node[K] {
	n := &Node[K]{
		nodeType: nodeType,
		entries:  make([]Entry[K], 0, t.degree),
	}
	if nodeType == NodeInternal {
		n.children = make([]int64, 0, t.degree+1)
	}
	t.nodes.allocate(n)
	return n
}

func (t *BPlusTree[K]) node(id int64) *Node[K] {
	return t.nodes.get(id)
}

// freeNode removes a node that is no longer reachable from the root.
func (t *BPlusTree[K]) freeNode(n *Node[K]) {
	t.nodes.release(n.id)
}

func (n *Node[K]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// childIndex returns the position of child id among n's children.
func (n *Node[K]) childIndex(id int64) int {
	for i, c := range n.children {
		if c == id {
			return i
		}
	}
	panic("bplus: child not found in parent")
}
