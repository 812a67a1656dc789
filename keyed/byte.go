package keyed

// Byte adopts the Sortable contract for the built-in byte type, with the
// value itself as the designated key.
type Byte byte

var _ Sortable[byte] = Byte(0)

// Key returns the underlying byte value.
func (b Byte) Key() byte {
	return byte(b)
}
