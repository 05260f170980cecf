package node

import "github.com/hexradix/artix/internal/arena"

// This file implements spec §3's InnerWithLeaf(k, v) variant: one node
// that is simultaneously an inner node of kind k and the terminus of a
// key that ends one byte short of it. It arises whenever one stored key
// is a proper prefix of another, e.g. inserting "to" after "toast" — an
// Inner node already sits where "to" needs to become a leaf too.
//
// Each combined kind embeds the plain inner node it extends so findChild,
// addChild, and full are inherited unchanged; only Kind and grow need to
// know about the extra Value.
//
// grow builds the next kind from the embedded fields directly, via the
// same growNodeN helper the plain node's own grow uses, rather than
// calling the embedded node's grow method. The embedded Node4/16/48 here
// is not its own allocation — it is the leading fields of this larger
// struct — so a grow that ends by arena.Free'ing its receiver would free
// that interior address while this struct's own *NodeXLeaf address is
// freed right after, handing the same memory back out under two
// different types.

// Node4Leaf is a Node4 that also terminates a key.
type Node4Leaf[V any] struct {
	Node4[V]
	Value V
}

// Kind implements Ref.
func (*Node4Leaf[V]) Kind() Kind { return KindNode4Leaf }

func (n *Node4Leaf[V]) grow(a *arena.Arena) Ref[V] {
	plain := growNode4[V](n.Keys, n.Children, n.Count)
	grown := arena.New(a, Node16Leaf[V]{Node16: plain, Value: n.Value})
	arena.Free(a, n)

	return grown
}

// Node16Leaf is a Node16 that also terminates a key.
type Node16Leaf[V any] struct {
	Node16[V]
	Value V
}

// Kind implements Ref.
func (*Node16Leaf[V]) Kind() Kind { return KindNode16Leaf }

func (n *Node16Leaf[V]) grow(a *arena.Arena) Ref[V] {
	plain := growNode16[V](n.Keys, n.Children, n.Count)
	grown := arena.New(a, Node48Leaf[V]{Node48: plain, Value: n.Value})
	arena.Free(a, n)

	return grown
}

// Node48Leaf is a Node48 that also terminates a key.
type Node48Leaf[V any] struct {
	Node48[V]
	Value V
}

// Kind implements Ref.
func (*Node48Leaf[V]) Kind() Kind { return KindNode48Leaf }

func (n *Node48Leaf[V]) grow(a *arena.Arena) Ref[V] {
	plain := growNode48[V](n.Index, n.Children)
	grown := arena.New(a, Node256Leaf[V]{Node256: plain, Value: n.Value})
	arena.Free(a, n)

	return grown
}

// Node256Leaf is a Node256 that also terminates a key. Node256 never
// grows, so neither does this.
type Node256Leaf[V any] struct {
	Node256[V]
	Value V
}

// Kind implements Ref.
func (*Node256Leaf[V]) Kind() Kind { return KindNode256Leaf }

func (n *Node256Leaf[V]) grow(*arena.Arena) Ref[V] {
	panic("artix: Node256Leaf cannot grow further")
}
