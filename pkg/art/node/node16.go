package node

import (
	"github.com/hexradix/artix/internal/arena"
	"github.com/hexradix/artix/internal/bsearch"
)

// Node16 is spec §4.3's inner node: up to 16 children, found by binary
// search over a sorted, parallel array of keys. Keeping the keys sorted is
// what lets bsearch do better than a linear scan, and what would let a
// SIMD equality-mask scan replace it without changing this type's shape.
type Node16[V any] struct {
	Keys     [16]byte
	Children [16]Ref[V]
	Count    int
}

// Kind implements Ref.
func (*Node16[V]) Kind() Kind { return KindNode16 }

func (n *Node16[V]) full() bool { return n.Count == len(n.Keys) }

func (n *Node16[V]) findChild(b byte) *Ref[V] {
	i := bsearch.FindKeyIndex(&n.Keys, n.Count, b)
	if i < 0 {
		return nil
	}

	return &n.Children[i]
}

func (n *Node16[V]) addChild(b byte, child Ref[V]) *Ref[V] {
	i := bsearch.InsertPosition(&n.Keys, n.Count, b)

	copy(n.Keys[i+1:n.Count+1], n.Keys[i:n.Count])
	copy(n.Children[i+1:n.Count+1], n.Children[i:n.Count])

	n.Keys[i] = b
	n.Children[i] = child
	n.Count++

	return &n.Children[i]
}

// growNode16 returns the contents of a full Node16 as a Node48. Node16's
// keys are already sorted, but Node48 doesn't care about order at all —
// it indexes children directly by byte value — so no sort is needed here.
func growNode16[V any](keys [16]byte, children [16]Ref[V], count int) Node48[V] {
	var grown Node48[V]
	grown.Count = count
	for i := 0; i < count; i++ {
		grown.Index[keys[i]] = uint8(i + 1)
		grown.Children[i] = children[i]
	}

	return grown
}

func (n *Node16[V]) grow(a *arena.Arena) Ref[V] {
	grown := arena.New(a, growNode16[V](n.Keys, n.Children, n.Count))
	arena.Free(a, n)

	return grown
}
