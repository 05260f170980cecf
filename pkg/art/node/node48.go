package node

import "github.com/hexradix/artix/internal/arena"

// Node48 is spec §4.4's inner node: up to 48 children, found by a single
// indexed lookup. Index maps a key byte to a 1-based slot in Children; 0
// means no slot has ever been assigned to that byte. The 1-based encoding
// is what lets Index's zero value mean "absent" without a separate
// occupancy bitmap.
type Node48[V any] struct {
	Index    [256]uint8
	Children [48]Ref[V]
	Count    int
}

// Kind implements Ref.
func (*Node48[V]) Kind() Kind { return KindNode48 }

func (n *Node48[V]) full() bool { return n.Count == len(n.Children) }

func (n *Node48[V]) findChild(b byte) *Ref[V] {
	slot := n.Index[b]
	if slot == 0 {
		return nil
	}

	return &n.Children[slot-1]
}

// addChild assigns b the next unused slot. A slot emptied by remove() is
// never recycled onto a different byte: Index still maps the byte that
// vacated it to that slot, so findChild hands the same slot back when that
// byte is inserted again, and Count is a high-water mark.
func (n *Node48[V]) addChild(b byte, child Ref[V]) *Ref[V] {
	slot := n.Count
	n.Children[slot] = child
	n.Index[b] = uint8(slot + 1)
	n.Count++

	return &n.Children[slot]
}

// growNode48 returns the contents of a full Node48 as a Node256, indexed
// directly by byte value.
func growNode48[V any](index [256]uint8, children [48]Ref[V]) Node256[V] {
	var grown Node256[V]

	for b := 0; b < 256; b++ {
		slot := index[byte(b)]
		if slot == 0 {
			continue
		}

		grown.Children[b] = children[slot-1]
		if grown.Children[b] != nil {
			grown.Count++
		}
	}

	return grown
}

func (n *Node48[V]) grow(a *arena.Arena) Ref[V] {
	grown := arena.New(a, growNode48[V](n.Index, n.Children))
	arena.Free(a, n)

	return grown
}
