package keyed

// String adopts the Sortable contract for the built-in string type, with
// the value itself as the designated key.
type String string

var _ Sortable[string] = String("")

// Key returns the underlying string value.
func (s String) Key() string {
	return string(s)
}
