package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_EqualityIsComponentWise(t *testing.T) {
	t.Parallel()

	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2, 4)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCell_AsMapKey(t *testing.T) {
	t.Parallel()

	m := map[Cell]int{New(1, 1, 0): 42}
	v, ok := m[New(1, 1, 0)]
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestCell_AddSub(t *testing.T) {
	t.Parallel()

	a := New(1, 2, 3)
	b := New(1, 1, 1)
	assert.Equal(t, New(2, 3, 4), a.Add(b))
	assert.Equal(t, New(0, 1, 2), a.Sub(b))
}
