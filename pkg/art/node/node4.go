package node

import (
	"sort"

	"github.com/hexradix/artix/internal/arena"
)

// Node4 is spec §4.2's smallest inner node: up to 4 children, found by a
// linear scan over a parallel, unsorted array of keys.
//
// Count is a high-water mark of how many slots have ever been occupied,
// not a live count of non-empty children: remove() never shrinks a node
// (spec §9), so a byte whose child was removed keeps its slot — and keeps
// counting toward Count — until the whole node is discarded by a promotion
// it was never part of.
type Node4[V any] struct {
	Keys     [4]byte
	Children [4]Ref[V]
	Count    int
}

// Kind implements Ref.
func (*Node4[V]) Kind() Kind { return KindNode4 }

func (n *Node4[V]) full() bool { return n.Count == len(n.Keys) }

func (n *Node4[V]) findChild(b byte) *Ref[V] {
	for i := 0; i < n.Count; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}

	return nil
}

// addChild appends b to the first free slot. Node4 does not keep its keys
// sorted: with at most 4 entries a linear scan costs nothing, and there is
// no SIMD seam worth preserving the order for (contrast Node16).
func (n *Node4[V]) addChild(b byte, child Ref[V]) *Ref[V] {
	i := n.Count
	n.Keys[i] = b
	n.Children[i] = child
	n.Count++

	return &n.Children[i]
}

// growNode4 returns the contents of a full Node4 as a Node16, with its
// key/child pairs sorted by byte ascending. Node4 accepts children in
// arrival order (addChild above), but Node16's binary search requires
// keys[:count] to be strictly ascending (spec §3 invariant 4, §4.2), so
// promotion must sort rather than copy verbatim.
func growNode4[V any](keys [4]byte, children [4]Ref[V], count int) Node16[V] {
	type pair struct {
		key   byte
		child Ref[V]
	}

	pairs := make([]pair, count)
	for i := 0; i < count; i++ {
		pairs[i] = pair{keys[i], children[i]}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	var grown Node16[V]
	grown.Count = count
	for i, p := range pairs {
		grown.Keys[i] = p.key
		grown.Children[i] = p.child
	}

	return grown
}

func (n *Node4[V]) grow(a *arena.Arena) Ref[V] {
	grown := arena.New(a, growNode4[V](n.Keys, n.Children, n.Count))
	arena.Free(a, n)

	return grown
}
