package bplus

import (
	"cmp"
	"fmt"
)

// nodeArena owns every node of one tree. Nodes are addressed by stable ids;
// id 0 is never handed out and stands for "no node". Freed ids are reused.
type nodeArena[K cmp.Ordered] struct {
	slots []*Node[K]
	free  []int64
	live  int
}

func newNodeArena[K cmp.Ordered]() *nodeArena[K] {
	return &nodeArena[K]{
		slots: make([]*Node[K], 1, 16), // slot 0 reserved
	}
}

func (a *nodeArena[K]) allocate(n *Node[K]) int64 {
	var id int64
	if k := len(a.free); k > 0 {
		id = a.free[k-1]
		a.free = a.free[:k-1]
		a.slots[id] = n
	} else {
		id = int64(len(a.slots))
		a.slots = append(a.slots, n)
	}
	n.id = id
	a.live++
	return id
}

// get panics on a dangling id: a reachable id that has no node means the
// tree structure is broken.
func (a *nodeArena[K]) get(id int64) *Node[K] {
	if id <= 0 || id >= int64(len(a.slots)) || a.slots[id] == nil {
		panic(fmt.Sprintf("bplus: dangling node id %d", id))
	}
	return a.slots[id]
}

func (a *nodeArena[K]) release(id int64) {
	if id <= 0 || id >= int64(len(a.slots)) || a.slots[id] == nil {
		panic(fmt.Sprintf("bplus: node %d freed twice", id))
	}
	n := a.slots[id]
	n.entries = nil
	n.children = nil
	n.next = 0
	a.slots[id] = nil
	a.free = append(a.free, id)
	a.live--
}

func (a *nodeArena[K]) liveCount() int {
	return a.live
}
