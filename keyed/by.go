package keyed

import (
	"cmp"
)

// By adapts a Sortable value to the Equals/LessThan method set that sorted
// collections (red-black tree sets and maps, ordered containers) expect
// from their element types. The methods are derived from the wrapped
// value's Key accessor, so one accessor buys conformance to both worlds.
//
// Example:
//
//	type User struct {
//	    ID   int
//	    Name string
//	}
//
//	func (u User) Key() int { return u.ID }
//
//	a := keyed.Of[int](User{ID: 1, Name: "Alice"})
//	b := keyed.Of[int](User{ID: 2, Name: "Bob"})
//	a.LessThan(b) // true
type By[K cmp.Ordered, T Sortable[K]] struct {
	Value T
}

// Of wraps a Sortable value in a By adapter.
func Of[K cmp.Ordered, T Sortable[K]](value T) By[K, T] {
	return By[K, T]{Value: value}
}

// Equals returns true if both wrapped values have equal designated keys.
func (b By[K, T]) Equals(other By[K, T]) bool {
	return Equal[K](b.Value, other.Value)
}

// LessThan returns true if this wrapped value's designated key orders
// strictly before the other's.
func (b By[K, T]) LessThan(other By[K, T]) bool {
	return Less[K](b.Value, other.Value)
}
