package bplus

import (
	"slices"

	"go.uber.org/zap"
)

// deleteFromParent drops removed (already freed) and the separator to its
// left from node, then fixes an underflow of node one level at a time up
// the ancestor stack. The root is never rebalanced; when it is left with a
// single child that child becomes the root.
func (t *BPlusTree[K]) deleteFromParent(node *Node[K], removed int64, path *ancestors) {
	for {
		idx := node.childIndex(removed)
		node.entries = slices.Delete(node.entries, idx-1, idx)
		node.children = slices.Delete(node.children, idx, idx+1)

		if node.id == t.root {
			if len(node.entries) == 0 {
				t.root = node.children[0]
				t.freeNode(node)
				t.height--
				t.log.Debug("root collapse",
					zap.Int64("root", t.root),
					zap.Int("height", t.height))
			}
			return
		}
		if len(node.children) >= t.minChildren() {
			return
		}

		parent := t.node(path.pop())
		i := parent.childIndex(node.id)

		var left, right *Node[K]
		var sepIdx int
		if i > 0 {
			left, right = t.node(parent.children[i-1]), node
			sepIdx = i - 1
		} else {
			left, right = node, t.node(parent.children[i+1])
			sepIdx = i
		}
		sep := parent.entries[sepIdx]

		if len(left.entries)+1+len(right.entries) < t.degree {
			// the separator comes down between the two halves
			left.entries = append(left.entries, sep)
			left.entries = append(left.entries, right.entries...)
			left.children = append(left.children, right.children...)
			t.log.Debug("merge internal",
				zap.Int64("into", left.id),
				zap.Int64("removed", right.id),
				zap.Int("children", len(left.children)))
			removed = right.id
			t.freeNode(right)
			node = parent
			continue
		}

		if right == node {
			// rotate right: left's last child moves over, separators shift
			last := len(left.entries) - 1
			node.entries = slices.Insert(node.entries, 0, sep)
			node.children = slices.Insert(node.children, 0, left.children[last+1])
			parent.entries[sepIdx] = left.entries[last]
			left.entries = slices.Delete(left.entries, last, last+1)
			left.children = slices.Delete(left.children, last+1, last+2)
		} else {
			// rotate left: right's first child moves over
			node.entries = append(node.entries, sep)
			node.children = append(node.children, right.children[0])
			parent.entries[sepIdx] = right.entries[0]
			right.entries = slices.Delete(right.entries, 0, 1)
			right.children = slices.Delete(right.children, 0, 1)
		}
		t.log.Debug("redistribute internal",
			zap.Int64("left", left.id),
			zap.Int64("right", right.id))
		return
	}
}
