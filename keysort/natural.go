package keysort

import (
	"facette.io/natsort"
)

// SortedNatural returns a new slice ordered by natural (alphanumeric-aware)
// comparison of the derived string key, so "item2" sorts before "item10".
// The input slice is not modified.
func SortedNatural[E any](items []E, key func(E) string) []E {
	return SortedFunc(items, key, natsort.Compare)
}

// SortNatural orders items in place by natural comparison of the derived
// string key.
func SortNatural[E any](items []E, key func(E) string) {
	SortFunc(items, key, natsort.Compare)
}
