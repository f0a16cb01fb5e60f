package bplus

import (
	"slices"

	"go.uber.org/zap"
)

// insertIntoParent inserts sep and right into the parent of left, directly
// after left. If the parent overflows it is split and the promoted entry
// travels one level up, until a parent has room or the root splits.
func (t *BPlusTree[K]) insertIntoParent(left *Node[K], sep Entry[K], right *Node[K], path *ancestors) {
	for {
		if left.id == t.root {
			root := t.newNode(NodeInternal)
			root.entries = append(root.entries, sep)
			root.children = append(root.children, left.id, right.id)
			t.root = root.id
			t.height++
			t.log.Debug("root split",
				zap.Int64("root", root.id),
				zap.Int("height", t.height))
			return
		}

		parent := t.node(path.pop())
		idx := parent.childIndex(left.id)

		// entries: sep goes to idx; children: right goes after left
		parent.entries = slices.Insert(parent.entries, idx, sep)
		parent.children = slices.Insert(parent.children, idx+1, right.id)

		if len(parent.entries) <= t.maxEntries() {
			return
		}
		left = parent
		sep, right = t.splitInternal(parent)
	}
}
