// Package arena provides a small, type-indexed free-list allocator used to
// recycle nodes that a structural transition (promotion, leaf-combination)
// discards.
//
// An Adaptive Radix Tree promotes nodes constantly as they fill up —
// Node4 -> Node16 -> Node48 -> Node256 — and every promotion abandons the
// smaller struct. Without reuse, a tree built by many small inserts pays
// for a fresh heap allocation on every single promotion, even though the
// abandoned struct is exactly the shape the next promotion of that kind
// will need. Arena hands that struct back out instead of letting the
// garbage collector reclaim and the allocator re-mint it.
//
// This is a pure-Go simplification of a true arena allocator (bump
// allocation from pre-sized chunks): see DESIGN.md for why the unsafe,
// chunk-based version was not ported. The public shape (New/Free) and the
// use sites are the same either way.
package arena

import "reflect"

// Arena is a type-indexed free list. The zero value is ready to use.
type Arena struct {
	freed map[reflect.Type][]any
}

// New returns a *T holding value, reusing a previously Free'd *T of the
// same concrete type if one is available.
//
// a may be nil, in which case New always allocates.
func New[T any](a *Arena, value T) *T {
	if a != nil {
		if p := a.take(reflect.TypeFor[T]()); p != nil {
			ptr := p.(*T)
			*ptr = value

			return ptr
		}
	}

	v := value

	return &v
}

// Free returns p to the arena so a later New of the same concrete type may
// reuse its memory. p must not be used again by the caller.
//
// a may be nil, in which case Free discards p.
func Free[T any](a *Arena, p *T) {
	if a == nil || p == nil {
		return
	}

	t := reflect.TypeFor[T]()
	if a.freed == nil {
		a.freed = make(map[reflect.Type][]any)
	}

	a.freed[t] = append(a.freed[t], p)
}

func (a *Arena) take(t reflect.Type) any {
	list := a.freed[t]
	if len(list) == 0 {
		return nil
	}

	p := list[len(list)-1]
	a.freed[t] = list[:len(list)-1]

	return p
}
