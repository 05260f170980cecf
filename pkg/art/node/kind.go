// Package node implements the tagged node family of an Adaptive Radix
// Tree: Node4, Node16, Node48 and Node256 inner nodes, terminal leaves, and
// the combined inner-and-leaf kinds needed when one stored key is a proper
// prefix of another.
//
// There is no path compression and no lazy expansion here: the tree spends
// exactly one level per key byte, so a leaf needs to carry nothing but its
// value — the path taken from the root already is the key.
package node

import "github.com/hexradix/artix/internal/arena"

// Kind identifies which concrete node type a Ref currently holds.
type Kind uint8

const (
	// KindLeaf is a terminal node holding exactly one value.
	KindLeaf Kind = iota
	// KindNode4 is an inner node with up to 4 children.
	KindNode4
	// KindNode16 is an inner node with up to 16 children.
	KindNode16
	// KindNode48 is an inner node with up to 48 children.
	KindNode48
	// KindNode256 is an inner node with up to 256 children.
	KindNode256
	// KindNode4Leaf is a Node4 that is also the terminus of a key.
	KindNode4Leaf
	// KindNode16Leaf is a Node16 that is also the terminus of a key.
	KindNode16Leaf
	// KindNode48Leaf is a Node48 that is also the terminus of a key.
	KindNode48Leaf
	// KindNode256Leaf is a Node256 that is also the terminus of a key.
	KindNode256Leaf
)

// Ref is a reference to a node in the tree: the tagged union of spec §3.
//
// A nil Ref[V] represents the Empty variant — a child slot with no child.
// Every other variant is represented by the concrete pointer type that
// satisfies Ref: *Leaf[V] for Leaf{v}, *Node4[V]/*Node16[V]/*Node48[V]/
// *Node256[V] for Inner(k), and the corresponding *NodeXLeaf[V] for
// InnerWithLeaf(k, v).
type Ref[V any] interface {
	// Kind reports which concrete variant this reference holds.
	Kind() Kind
}

// inner is satisfied by every node kind that can hold children: the four
// plain inner kinds and their combined-with-leaf counterparts. Leaf does
// not satisfy it, and neither does a nil Ref, which is exactly the "None
// if Empty or Leaf" dispatch rule of spec §4.6.
type inner[V any] interface {
	Ref[V]

	findChild(b byte) *Ref[V]
	addChild(b byte, child Ref[V]) *Ref[V]
	full() bool
	grow(a *arena.Arena) Ref[V]
}

// FindChild locates the child at byte b, delegating to the current node's
// kind. It returns nil if n is Empty or a Leaf, or if no child exists for
// b.
//
// From an InnerWithLeaf node, only the inner part is consulted: the value
// carried alongside it is not a child and is never returned here.
func FindChild[V any](n Ref[V], b byte) *Ref[V] {
	in, ok := n.(inner[V])
	if !ok {
		return nil
	}

	return in.findChild(b)
}

// GrowIfFull promotes the node held in slot, in place, so that it is
// capable of gaining another child:
//
//   - Empty becomes an empty Node4.
//   - Leaf{v} becomes an empty Node4 combined with v.
//   - A full inner node of kind K is replaced by its grown kind K'.
//   - A non-full inner node, of either flavor, is left untouched.
func GrowIfFull[V any](a *arena.Arena, slot *Ref[V]) {
	switch n := (*slot).(type) {
	case nil:
		*slot = arena.New(a, Node4[V]{})
	case *Leaf[V]:
		*slot = arena.New(a, Node4Leaf[V]{Value: n.Value})
	case inner[V]:
		if n.full() {
			*slot = n.grow(a)
		}
	default:
		panic("artix: impossible node kind")
	}
}

// AddChild attaches child at byte b under the node held in slot, promoting
// slot first if necessary (spec §4.6). It returns a pointer to the newly
// placed child's slot.
func AddChild[V any](a *arena.Arena, slot *Ref[V], b byte, child Ref[V]) *Ref[V] {
	GrowIfFull(a, slot)

	in, ok := (*slot).(inner[V])

	debugAssertInner(ok)

	return in.addChild(b, child)
}

// InsertInLeaf places value at the position held in slot, transitioning
// its variant per spec §4.6, and returns the value that previously
// occupied that position, or nil if there was none.
func InsertInLeaf[V any](a *arena.Arena, slot *Ref[V], value V) *V {
	switch n := (*slot).(type) {
	case nil:
		*slot = arena.New(a, Leaf[V]{Value: value})

		return nil

	case *Leaf[V]:
		old := n.Value
		n.Value = value

		return &old

	case *Node4[V]:
		*slot = arena.New(a, Node4Leaf[V]{Node4: *n, Value: value})
		arena.Free(a, n)

		return nil

	case *Node4Leaf[V]:
		old := n.Value
		n.Value = value

		return &old

	case *Node16[V]:
		*slot = arena.New(a, Node16Leaf[V]{Node16: *n, Value: value})
		arena.Free(a, n)

		return nil

	case *Node16Leaf[V]:
		old := n.Value
		n.Value = value

		return &old

	case *Node48[V]:
		*slot = arena.New(a, Node48Leaf[V]{Node48: *n, Value: value})
		arena.Free(a, n)

		return nil

	case *Node48Leaf[V]:
		old := n.Value
		n.Value = value

		return &old

	case *Node256[V]:
		*slot = arena.New(a, Node256Leaf[V]{Node256: *n, Value: value})
		arena.Free(a, n)

		return nil

	case *Node256Leaf[V]:
		old := n.Value
		n.Value = value

		return &old

	default:
		panic("artix: impossible node kind")
	}
}

// ValueAt reports the value stored at the position n, if any: n must hold
// a Leaf or an InnerWithLeaf variant. It returns nil for Empty and for a
// plain Inner node, since those positions are reachable as part of some
// longer key's path without a value of their own ever having been
// inserted there.
func ValueAt[V any](n Ref[V]) *V {
	switch n := n.(type) {
	case *Leaf[V]:
		return &n.Value
	case *Node4Leaf[V]:
		return &n.Value
	case *Node16Leaf[V]:
		return &n.Value
	case *Node48Leaf[V]:
		return &n.Value
	case *Node256Leaf[V]:
		return &n.Value
	default:
		return nil
	}
}

// RemoveLeaf clears the value stored at the position held in slot,
// per spec §4.7's remove():
//
//   - Leaf{v} becomes Empty.
//   - InnerWithLeaf(k, v) becomes Inner(k); its children are untouched.
//   - Any other variant is left alone and nil is returned.
//
// Removal never shrinks a node's capacity or reclaims a parent's byte
// slot: that slot stays allocated for a future insert at the same prefix
// (spec §9).
func RemoveLeaf[V any](slot *Ref[V]) *V {
	switch n := (*slot).(type) {
	case *Leaf[V]:
		old := n.Value
		*slot = nil

		return &old

	case *Node4Leaf[V]:
		old := n.Value
		*slot = &n.Node4

		return &old

	case *Node16Leaf[V]:
		old := n.Value
		*slot = &n.Node16

		return &old

	case *Node48Leaf[V]:
		old := n.Value
		*slot = &n.Node48

		return &old

	case *Node256Leaf[V]:
		old := n.Value
		*slot = &n.Node256

		return &old

	default:
		return nil
	}
}

func debugAssertInner(ok bool) {
	if !ok {
		panic("artix: add_child dispatched to a non-inner node after grow_if_full")
	}
}
