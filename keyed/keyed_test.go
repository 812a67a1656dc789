package keyed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// account nominates its ID as the designated key; Balance is deliberately
// excluded from equality and ordering.
type account struct {
	ID      string
	Balance int
}

func (a account) Key() string {
	return a.ID
}

// Compile-time check that account adopts both contracts.
var (
	_ Equatable[string] = account{}
	_ Sortable[string]  = account{}
)

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        account
		b        account
		expected bool
	}{
		{
			name:     "equal keys and equal fields",
			a:        account{ID: "acct-1", Balance: 100},
			b:        account{ID: "acct-1", Balance: 100},
			expected: true,
		},
		{
			name:     "equal keys with different fields",
			a:        account{ID: "acct-1", Balance: 100},
			b:        account{ID: "acct-1", Balance: 9999},
			expected: true,
		},
		{
			name:     "different keys",
			a:        account{ID: "acct-1", Balance: 100},
			b:        account{ID: "acct-2", Balance: 100},
			expected: false,
		},
		{
			name:     "zero values",
			a:        account{},
			b:        account{},
			expected: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equal[string](tt.a, tt.b))
		})
	}
}

func TestLessGreater(t *testing.T) {
	t.Parallel()

	a := account{ID: "acct-1", Balance: 9999}
	b := account{ID: "acct-2", Balance: 1}

	assert.True(t, Less[string](a, b))
	assert.True(t, Greater[string](b, a))
	assert.False(t, Less[string](b, a))
	assert.False(t, Greater[string](a, b))

	// Equal keys: neither orders before the other.
	same := account{ID: "acct-1", Balance: 0}
	assert.False(t, Less[string](a, same))
	assert.False(t, Greater[string](a, same))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := account{ID: "acct-1"}
	b := account{ID: "acct-2"}

	assert.Equal(t, -1, Compare[string](a, b))
	assert.Equal(t, 1, Compare[string](b, a))
	assert.Equal(t, 0, Compare[string](a, account{ID: "acct-1", Balance: 42}))
}

func TestOrderingAndEqualityAgree(t *testing.T) {
	t.Parallel()

	a := account{ID: "acct-7", Balance: 1}
	b := account{ID: "acct-7", Balance: 2}

	// Both contracts consult the same accessor, so values that are
	// neither less nor greater must be equal.
	assert.False(t, Less[string](a, b))
	assert.False(t, Greater[string](a, b))
	assert.True(t, Equal[string](a, b))
}

func TestWrapperTypes(t *testing.T) {
	t.Parallel()

	t.Run("Int", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal[int](Int(5), Int(5)))
		assert.True(t, Less[int](Int(3), Int(7)))
		assert.True(t, Greater[int](Int(7), Int(3)))
		assert.Equal(t, 5, Int(5).Key())
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal[string](String("a"), String("a")))
		assert.True(t, Less[string](String("a"), String("b")))
		assert.False(t, Equal[string](String("a"), String("b")))
	})

	t.Run("Byte", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Less[byte](Byte('a'), Byte('b')))
		assert.True(t, Equal[byte](Byte('x'), Byte('x')))
	})
}
