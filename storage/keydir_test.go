package storage

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDir_BadDegreeFallsBack(t *testing.T) {
	for _, degree := range []int{-1, 0, 1} {
		k := newKeyDir[int, int](degree, cmp.Less[int])
		k.Set(1, 1)
		assert.Equal(t, 1, k.Len())
	}
}

func TestKeyDir_Floor(t *testing.T) {
	k := newKeyDir[int, string](2, cmp.Less[int])
	for i := 10; i <= 100; i += 10 {
		k.Set(i, "")
	}

	tests := []struct {
		name  string
		query int
		want  int
		found bool
	}{
		{"below all", 9, 0, false},
		{"first", 10, 10, true},
		{"between", 55, 50, true},
		{"exact", 70, 70, true},
		{"last", 100, 100, true},
		{"above all", 101, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := k.Floor(tt.query)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, e.key)
			}
		})
	}
}

func TestKeyDir_SetKeepsEntry(t *testing.T) {
	k := newKeyDir[int, int](2, cmp.Less[int])
	k.Set(3, 1)
	before, _ := k.Get(3)
	k.Set(3, 2)
	after, _ := k.Get(3)

	assert.Same(t, before, after)
	assert.Equal(t, 2, after.value)
	assert.Equal(t, 1, k.Len())
}

func TestKeyDir_DeleteAndMax(t *testing.T) {
	k := newKeyDir[int, int](2, cmp.Less[int])
	_, ok := k.Max()
	assert.False(t, ok)

	k.Set(1, 10)
	k.Set(2, 20)

	e, ok := k.Max()
	require.True(t, ok)
	assert.Equal(t, 2, e.key)

	e, ok = k.Delete(2)
	require.True(t, ok)
	assert.Equal(t, 20, e.value)

	_, ok = k.Delete(2)
	assert.False(t, ok)
	assert.False(t, k.Has(2))

	e, _ = k.Max()
	assert.Equal(t, 1, e.key)
}
