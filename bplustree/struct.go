// Structure of B+ Tree
/*
Tree
 ├── Internal Node (entries + child ids)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (entries + next id)


- entries: (key, tie) pairs, strictly ascending by key then tie
- internal nodes: len(children) == len(entries)+1
- leaf nodes linked with `next` for in-order traversal
- all leaf nodes at same depth
- a node holds at most degree-1 entries, an internal node at most degree children

*/
package bplus

import (
	"cmp"
	"errors"

	"go.uber.org/zap"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (t NodeType) String() string {
	if t == NodeLeaf {
		return "LEAF"
	}
	return "INTERNAL"
}

// MinDegree is the smallest branching factor that still allows a split.
const MinDegree = 3

var (
	ErrInvalidDegree = errors.New("degree must be at least 3")
	ErrCorrupt       = errors.New("b+ tree invariant violated")
)

// Entry is a stored composite key. Tie disambiguates duplicate keys and is
// assigned by the tree on insert, starting at 1.
type Entry[K cmp.Ordered] struct {
	Key K
	Tie uint64
}

type Node[K cmp.Ordered] struct {
	id       int64
	nodeType NodeType
	entries  []Entry[K]
	children []int64 // only for internal node
	next     int64   // only for leaf node, 0 when last
}

type BPlusTree[K cmp.Ordered] struct {
	id      uint64
	root    int64 // root node id
	nodes   *nodeArena[K]
	degree  int
	tie     uint64 // last assigned tie
	size    int
	height  int
	version uint64
	log     *zap.Logger
}

// Option configures a BPlusTree.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for structural events (splits, merges,
// redistributions, root changes). Events are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
