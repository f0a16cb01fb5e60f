// Structure dumps for debugging and for hosts that draw the tree.

package bplus

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// NodeView is a read-only copy of one node handed to Walk callbacks.
type NodeView[K cmp.Ordered] struct {
	ID       int64
	Type     NodeType
	Depth    int
	Entries  []Entry[K]
	Children []int64 // internal nodes only
	Next     int64   // leaf nodes only
}

// Keys returns the keys of the node's entries.
func (v NodeView[K]) Keys() []K {
	keys := make([]K, len(v.Entries))
	for i, e := range v.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Walk visits every node depth-first, parents before children, children in
// order. Returning false from fn skips the node's subtree.
func (t *BPlusTree[K]) Walk(fn func(NodeView[K]) bool) {
	t.walk(t.root, 0, fn)
}

func (t *BPlusTree[K]) walk(id int64, depth int, fn func(NodeView[K]) bool) {
	n := t.node(id)
	if !fn(n.view(depth)) || n.isLeaf() {
		return
	}
	for _, c := range n.children {
		t.walk(c, depth+1, fn)
	}
}

func (n *Node[K]) view(depth int) NodeView[K] {
	v := NodeView[K]{
		ID:      n.id,
		Type:    n.nodeType,
		Depth:   depth,
		Entries: append([]Entry[K](nil), n.entries...),
		Next:    n.next,
	}
	if !n.isLeaf() {
		v.Children = append([]int64(nil), n.children...)
	}
	return v
}

// WriteLevels writes the tree breadth-first, one block per level:
//
//	Level 0:
//	  [node 3] INTERNAL keys=[10 20] children=[1 2 4]
//	Level 1:
//	  [node 1] LEAF keys=[5 6 7] next=2
func (t *BPlusTree[K]) WriteLevels(w io.Writer) error {
	p := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	queue := []int64{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		if err := p("Level %d:\n", level); err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			n := t.node(queue[i])
			if n.isLeaf() {
				if err := p("  [node %d] LEAF keys=%v next=%d\n", n.id, n.keys(), n.next); err != nil {
					return err
				}
				continue
			}
			if err := p("  [node %d] INTERNAL keys=%v children=%v\n", n.id, n.keys(), n.children); err != nil {
				return err
			}
			queue = append(queue, n.children...)
		}
		queue = queue[size:]
		level++
	}
	return nil
}

// WriteTree writes an indented outline, one node per line, with ties shown
// as key#tie.
func (t *BPlusTree[K]) WriteTree(w io.Writer) error {
	var err error
	t.Walk(func(v NodeView[K]) bool {
		if err != nil {
			return false
		}
		parts := make([]string, len(v.Entries))
		for i, e := range v.Entries {
			parts[i] = fmt.Sprintf("%v#%d", e.Key, e.Tie)
		}
		_, err = fmt.Fprintf(w, "%s- [%s]\n", strings.Repeat("  ", v.Depth), strings.Join(parts, " "))
		return err == nil
	})
	return err
}

func (n *Node[K]) keys() []K {
	keys := make([]K, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}
	return keys
}
