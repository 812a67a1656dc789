package keyed

// Int adopts the Sortable contract for the built-in int type, with the
// value itself as the designated key.
//
// To convert back to a regular int, use a type conversion:
//
//	var k keyed.Int = 42
//	regularInt := int(k)
type Int int

// Compile-time check that Int implements Sortable[int].
var _ Sortable[int] = Int(0)

// Key returns the underlying int value.
func (i Int) Key() int {
	return int(i)
}
