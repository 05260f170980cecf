// Package art implements an in-memory, ordered, byte-string-keyed
// Adaptive Radix Tree.
//
// A Tree maps []byte keys to values of a single type V. Lookup cost is
// proportional to key length rather than to the number of stored keys,
// and nodes grow through four fixed capacities (4, 16, 48, 256 children)
// as a prefix accumulates more distinct next-bytes, which is what keeps a
// sparse tree small without giving up the lookup-cost guarantee a dense
// one gets from its 256-wide nodes.
package art

import (
	"github.com/hexradix/artix/internal/arena"
	"github.com/hexradix/artix/pkg/art/node"
)

// Tree is an Adaptive Radix Tree mapping []byte keys to values of type V.
// The zero value is an empty tree ready to use; New returns a pointer to
// one.
type Tree[V any] struct {
	root  node.Ref[V]
	count int
	arena arena.Arena
}

// New returns an empty Tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int { return t.count }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[V]) IsEmpty() bool { return t.count == 0 }

// Get returns a pointer to the value stored under key, or nil if key is
// absent.
func (t *Tree[V]) Get(key []byte) *V {
	slot := t.find(key)
	if slot == nil {
		return nil
	}

	return node.ValueAt[V](*slot)
}

// GetMut returns a pointer to the value stored under key, or nil if key
// is absent. The returned pointer aliases the tree's own storage, so
// writes through it are visible to later Get/GetMut calls without going
// through Insert.
func (t *Tree[V]) GetMut(key []byte) *V {
	return t.Get(key)
}

// find walks key from the root, stopping as soon as no child exists for
// the next byte. It returns the slot the last consumed byte led to, or
// nil if any byte along the way had no matching child — key is absent
// either way, but callers that need to keep descending (Insert) create
// the missing slots instead of stopping.
func (t *Tree[V]) find(key []byte) *node.Ref[V] {
	slot := &t.root

	for _, b := range key {
		slot = node.FindChild[V](*slot, b)
		if slot == nil {
			return nil
		}
	}

	return slot
}

// Insert associates value with key, returning a pointer to the value key
// previously held, or nil if key was absent.
//
// Every byte of key, except its position as the terminus, selects one
// level of the tree; a key that is a proper prefix or proper extension of
// another already-stored key is handled by the InnerWithLeaf variant
// combining an inner node and a leaf value at the same position.
func (t *Tree[V]) Insert(key []byte, value V) *V {
	slot := &t.root

	for _, b := range key {
		slot = descend[V](&t.arena, slot, b)
	}

	old := node.InsertInLeaf[V](&t.arena, slot, value)
	if old == nil {
		t.count++
	}

	return old
}

// descend returns the child slot of b under the node held in slot,
// creating an Empty one — and promoting slot in place if necessary — if
// none exists yet.
func descend[V any](a *arena.Arena, slot *node.Ref[V], b byte) *node.Ref[V] {
	if child := node.FindChild[V](*slot, b); child != nil {
		return child
	}

	return node.AddChild[V](a, slot, b, nil)
}

// Remove deletes key, returning a pointer to the value it held, or nil if
// key was absent.
//
// Remove never shrinks a node's capacity, demotes a grown node back down,
// or reclaims a parent's byte slot (spec's non-shrinking removal policy):
// the tree can only grow in structure from here, never contract, even as
// it loses keys.
func (t *Tree[V]) Remove(key []byte) *V {
	slot := t.find(key)
	if slot == nil {
		return nil
	}

	old := node.RemoveLeaf[V](slot)
	if old != nil {
		t.count--
	}

	return old
}
