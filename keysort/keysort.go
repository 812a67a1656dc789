// Package keysort sorts slices by a derived key rather than a full
// element comparator. Callers supply a key function ("path") extracting a
// comparable value from each element; the slice is ordered by that value,
// either by its natural order or by a caller-supplied ordering predicate.
//
// All sorts are stable: elements with equal keys keep their relative input
// order. Key functions must be pure; a key function that returns different
// values for the same element across calls produces an unspecified order.
package keysort

import (
	"cmp"
	"slices"
)

// Sorted returns a new slice with the elements of items ordered ascending
// by the natural order of key(element). The input slice is not modified.
//
// An empty input yields an empty result, and a single-element input is
// returned as-is (copied).
func Sorted[E any, K cmp.Ordered](items []E, key func(E) K) []E {
	out := slices.Clone(items)

	Sort(out, key)

	return out
}

// SortedFunc returns a new slice with the elements of items ordered by the
// before predicate applied to extracted keys: before(a, b) reports whether
// an element with key a sorts before one with key b. The input slice is
// not modified.
//
// A panic raised by key or before propagates to the caller; the input is
// left untouched and no partial result is produced.
func SortedFunc[E any, K any](items []E, key func(E) K, before func(a, b K) bool) []E {
	out := slices.Clone(items)

	SortFunc(out, key, before)

	return out
}

// Sort orders items in place, ascending by the natural order of
// key(element).
func Sort[E any, K cmp.Ordered](items []E, key func(E) K) {
	slices.SortStableFunc(items, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortFunc orders items in place using the before predicate over extracted
// keys. Keys for which neither before(a, b) nor before(b, a) holds are
// treated as equal and keep their relative input order.
func SortFunc[E any, K any](items []E, key func(E) K, before func(a, b K) bool) {
	slices.SortStableFunc(items, func(a, b E) int {
		ka, kb := key(a), key(b)

		switch {
		case before(ka, kb):
			return -1
		case before(kb, ka):
			return 1
		default:
			return 0
		}
	})
}

// Reverse flips an ordering predicate, turning an ascending order into a
// descending one (and vice versa).
func Reverse[K any](before func(a, b K) bool) func(a, b K) bool {
	return func(a, b K) bool {
		return before(b, a)
	}
}
