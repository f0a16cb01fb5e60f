package bplus

import "go.uber.org/zap"

// splitLeaf splits a leaf holding degree entries. The left leaf keeps the
// first (degree+1)/2 entries, the new right leaf takes the rest and is
// linked after it; the right leaf's first entry becomes the separator.
func (t *BPlusTree[K]) splitLeaf(leaf *Node[K], path *ancestors) {
	boundary := (t.degree + 1) / 2

	right := t.newNode(NodeLeaf)
	right.next = leaf.next
	leaf.next = right.id

	right.entries = append(right.entries, leaf.entries[boundary:]...)
	clear(leaf.entries[boundary:])
	leaf.entries = leaf.entries[:boundary]

	t.log.Debug("split leaf",
		zap.Int64("left", leaf.id),
		zap.Int64("right", right.id),
		zap.Int("leftEntries", len(leaf.entries)),
		zap.Int("rightEntries", len(right.entries)))

	t.insertIntoParent(leaf, right.entries[0], right, path)
}
