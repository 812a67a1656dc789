// Package should provides test helpers that verify a slice is sorted,
// optionally by a derived key or a custom ordering predicate. The helpers
// are thin adapters over testify's assertions: every adjacent pair of the
// slice is checked and every violated pair is reported as its own test
// failure at the call site, so one call can surface several out-of-order
// regions instead of stopping at the first.
//
// All helpers accept any [assert.TestingT] as the failure sink. In normal
// use that is the *testing.T of the calling test; substituting another
// implementation (as this package's own tests do) redirects failure
// reporting without touching the checking logic.
package should

import (
	"cmp"

	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// BeSorted asserts that items is in ascending natural order. The check is
// non-strict: equal neighbors pass. Each violated adjacent pair is
// reported as a separate failure; slices with fewer than two elements
// trivially pass. Returns true if no pair failed.
func BeSorted[E cmp.Ordered](t assert.TestingT, items []E) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	passed := true

	for i := 0; i+1 < len(items); i++ {
		if !assert.LessOrEqual(t, items[i], items[i+1]) {
			passed = false
		}
	}

	return passed
}

// BeSortedFunc asserts that every adjacent pair of items satisfies the
// before predicate. Unlike BeSorted this is strict on the predicate's own
// semantics: before must return true for the pair to pass, including for
// equal neighbors. A caller wanting equal neighbors to pass supplies a
// non-strict predicate (e.g. <= rather than <).
func BeSortedFunc[E any](t assert.TestingT, items []E, before func(a, b E) bool) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	passed := true

	for i := 0; i+1 < len(items); i++ {
		if !assert.True(t, before(items[i], items[i+1])) {
			passed = false
		}
	}

	return passed
}

// BeSortedBy asserts that items is in ascending natural order of the
// derived key. Non-strict, like BeSorted.
func BeSortedBy[E any, K cmp.Ordered](t assert.TestingT, items []E, key func(E) K) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	passed := true

	for i := 0; i+1 < len(items); i++ {
		if !assert.LessOrEqual(t, key(items[i]), key(items[i+1])) {
			passed = false
		}
	}

	return passed
}

// BeSortedByFunc asserts that every adjacent pair of derived keys
// satisfies the before predicate. Strict on the predicate, like
// BeSortedFunc.
func BeSortedByFunc[E any, K any](t assert.TestingT, items []E, key func(E) K, before func(a, b K) bool) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	passed := true

	for i := 0; i+1 < len(items); i++ {
		if !assert.True(t, before(key(items[i]), key(items[i+1]))) {
			passed = false
		}
	}

	return passed
}
