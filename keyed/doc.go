// Package keyed grants equality and ordering semantics to structured
// values by delegating to one designated property, the "key".
//
// # Overview
//
// A type adopts the [Equatable] contract by declaring a single Key
// accessor returning a comparable value. [Equal] then derives equality
// from that accessor alone. The [Sortable] contract is the same accessor
// with the key constrained to an ordered type; [Less], [Greater], and
// [Compare] derive ordering from it. Because both contracts share the one
// accessor, equality and ordering can never disagree about which property
// they consult.
//
// This is deliberately weak equality: two values whose keys match are
// equal even when every other field differs. Nominate a key accessor only
// when that property really is the sole source of truth for identity.
//
// # Usage
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//
//	func (p Person) Key() string { return p.Name }
//
//	alice := Person{Name: "Alice", Age: 30}
//	other := Person{Name: "Alice", Age: 99}
//
//	keyed.Equal[string](alice, other) // true: same key, ages ignored
//	keyed.Less[string](alice, Person{Name: "Bob"}) // true
//
// The wrapper types [Int], [String], and [Byte] adopt the contract for
// the corresponding built-ins, and the [By] adapter exposes the
// Equals/LessThan method set sorted collections expect.
package keyed
