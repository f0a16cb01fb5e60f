package bplus

import (
	"cmp"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var treeSeq atomic.Uint64

// NewBPlusTree returns an empty tree (a single empty leaf as root) with the
// given branching factor. Internal nodes hold at most degree children and
// every node at most degree-1 entries.
func NewBPlusTree[K cmp.Ordered](degree int, opts ...Option) (*BPlusTree[K], error) {
	if degree < MinDegree {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	t := &BPlusTree[K]{
		id:     treeSeq.Add(1),
		nodes:  newNodeArena[K](),
		degree: degree,
		log:    o.logger,
	}
	root := t.newNode(NodeLeaf)
	t.root = root.id
	t.height = 1
	return t, nil
}

// maxEntries is the node capacity; one more entry means a split.
func (t *BPlusTree[K]) maxEntries() int {
	return t.degree - 1
}

// minLeafEntries is the occupancy below which a non-root leaf is rebalanced.
func (t *BPlusTree[K]) minLeafEntries() int {
	return t.degree / 2
}

// minChildren is the child count below which a non-root internal node is rebalanced.
func (t *BPlusTree[K]) minChildren() int {
	return (t.degree + 1) / 2
}

func (t *BPlusTree[K]) Degree() int { return t.degree }

// Len returns the number of stored entries, duplicates included.
func (t *BPlusTree[K]) Len() int { return t.size }

// Height is 1 for a tree whose root is a leaf.
func (t *BPlusTree[K]) Height() int { return t.height }

// NodeCount returns the number of live nodes.
func (t *BPlusTree[K]) NodeCount() int { return t.nodes.liveCount() }

// Version changes after every insert and every delete that removed an entry.
func (t *BPlusTree[K]) Version() uint64 { return t.version }

// ID is unique among trees created by this process.
func (t *BPlusTree[K]) ID() uint64 { return t.id }
