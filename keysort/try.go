package keysort

import (
	"cmp"
	"slices"
)

// keyedElem pairs an element with its extracted key so fallible sorts only
// invoke the key function once per element.
type keyedElem[E any, K any] struct {
	key  K
	elem E
}

// TrySorted is the fallible counterpart of Sorted: the key function may
// fail, and the first extraction error is returned to the caller unchanged.
// All keys are extracted before any reordering happens, so on error no
// partial result is produced and the input slice is never modified.
func TrySorted[E any, K cmp.Ordered](items []E, key func(E) (K, error)) ([]E, error) {
	pairs, err := extractKeys(items, key)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(pairs, func(a, b keyedElem[E, K]) int {
		return cmp.Compare(a.key, b.key)
	})

	return elements(pairs), nil
}

// TrySortedFunc is the fallible counterpart of SortedFunc. The before
// predicate follows the same rules as SortFunc; the key function's first
// error is returned unchanged and no partial result is produced.
func TrySortedFunc[E any, K any](items []E, key func(E) (K, error), before func(a, b K) bool) ([]E, error) {
	pairs, err := extractKeys(items, key)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(pairs, func(a, b keyedElem[E, K]) int {
		switch {
		case before(a.key, b.key):
			return -1
		case before(b.key, a.key):
			return 1
		default:
			return 0
		}
	})

	return elements(pairs), nil
}

func extractKeys[E any, K any](items []E, key func(E) (K, error)) ([]keyedElem[E, K], error) {
	pairs := make([]keyedElem[E, K], 0, len(items))

	for _, item := range items {
		k, err := key(item)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, keyedElem[E, K]{key: k, elem: item})
	}

	return pairs, nil
}

func elements[E any, K any](pairs []keyedElem[E, K]) []E {
	out := make([]E, 0, len(pairs))

	for _, pair := range pairs {
		out = append(out, pair.elem)
	}

	return out
}
