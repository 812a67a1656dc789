package keyed

import (
	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit xxh3 hash of the designated string key.
// Values that are Equal always produce the same fingerprint, which makes
// it usable as a bucket key in hash-addressed collections that store
// values by their designated property.
func Fingerprint[K ~string](v Equatable[K]) uint64 {
	return xxh3.HashString(string(v.Key()))
}
