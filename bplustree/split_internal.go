package bplus

import "go.uber.org/zap"

// splitInternal splits an internal node holding degree entries and returns
// the promoted entry and the new right sibling. The caller links both into
// the parent.
func (t *BPlusTree[K]) splitInternal(node *Node[K]) (Entry[K], *Node[K]) {
	bs := (t.degree + 2) / 2

	right := t.newNode(NodeInternal)

	// entries: left keeps [0:bs-1), promote entry[bs-1], right gets [bs:]
	// children: left keeps [0:bs], right gets [bs:]
	promote := node.entries[bs-1]

	right.entries = append(right.entries, node.entries[bs:]...)
	right.children = append(right.children, node.children[bs:]...)

	clear(node.entries[bs-1:])
	node.entries = node.entries[:bs-1]
	clear(node.children[bs:])
	node.children = node.children[:bs]

	t.log.Debug("split internal",
		zap.Int64("left", node.id),
		zap.Int64("right", right.id),
		zap.Int("leftChildren", len(node.children)),
		zap.Int("rightChildren", len(right.children)))

	return promote, right
}
