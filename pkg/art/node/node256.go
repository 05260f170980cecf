package node

import "github.com/hexradix/artix/internal/arena"

// Node256 is spec §4.5's largest inner node: a direct, densely indexed
// array of all 256 possible child slots. It is the terminal node kind —
// there is nowhere larger to grow to — so grow is never called on it.
type Node256[V any] struct {
	Children [256]Ref[V]
	Count    int
}

// Kind implements Ref.
func (*Node256[V]) Kind() Kind { return KindNode256 }

// full always reports false: every byte value already has a dedicated
// slot, so Node256 never needs to promote.
func (n *Node256[V]) full() bool { return false }

func (n *Node256[V]) findChild(b byte) *Ref[V] {
	if n.Children[b] == nil {
		return nil
	}

	return &n.Children[b]
}

func (n *Node256[V]) addChild(b byte, child Ref[V]) *Ref[V] {
	if n.Children[b] == nil {
		n.Count++
	}
	n.Children[b] = child

	return &n.Children[b]
}

func (n *Node256[V]) grow(*arena.Arena) Ref[V] {
	panic("artix: Node256 cannot grow further")
}
