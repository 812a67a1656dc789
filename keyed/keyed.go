// Package keyed derives equality and ordering for a type from one designated key accessor.
package keyed

import (
	"cmp"
)

// Equatable is adopted by nominating a single key accessor. Two values are
// considered equal iff their keys are equal; no other fields participate.
type Equatable[K comparable] interface {
	Key() K
}

// Sortable is adopted the same way as Equatable, with the key constrained
// to an ordered type. Ordering and equality are both derived from the one
// Key accessor, so the two can never disagree.
type Sortable[K cmp.Ordered] interface {
	Equatable[K]
}

// Equal reports whether a and b have equal designated keys. Values whose
// keys are equal are equal even if their other fields differ; the key is
// the sole source of truth.
func Equal[K comparable](a, b Equatable[K]) bool {
	return a.Key() == b.Key()
}

// Less reports whether a's designated key orders strictly before b's.
func Less[K cmp.Ordered](a, b Sortable[K]) bool {
	return a.Key() < b.Key()
}

// Greater reports whether a's designated key orders strictly after b's.
func Greater[K cmp.Ordered](a, b Sortable[K]) bool {
	return a.Key() > b.Key()
}

// Compare returns -1, 0, or +1 depending on whether a's designated key
// orders before, the same as, or after b's.
func Compare[K cmp.Ordered](a, b Sortable[K]) int {
	return cmp.Compare(a.Key(), b.Key())
}
