package bound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/cell"
)

func TestRectangle_ContainsAndCount(t *testing.T) {
	t.Parallel()

	r := NewRectangle(0, 0, 2, 1)
	assert.Equal(t, int64(6), r.Count())
	assert.True(t, r.Contains(cell.New(0, 0, 0)))
	assert.True(t, r.Contains(cell.New(2, 1, 0)))
	assert.False(t, r.Contains(cell.New(3, 0, 0)))
	assert.False(t, r.Contains(cell.New(0, 0, 1)))
}

func TestRectangle_EnumerateMatchesCount(t *testing.T) {
	t.Parallel()

	r := NewRectangle(-1, -1, 1, 1)
	cells := r.Enumerate()
	assert.Len(t, cells, int(r.Count()))
	for _, c := range cells {
		assert.True(t, r.Contains(c))
	}
}

func TestRectangle_EmptyRange(t *testing.T) {
	t.Parallel()

	r := NewRectangle(5, 5, 0, 0)
	assert.Equal(t, int64(0), r.Count())
	assert.Empty(t, r.Enumerate())
	assert.False(t, r.Contains(cell.New(5, 5, 0)))
}

func TestRectangle_IntersectAndUnion(t *testing.T) {
	t.Parallel()

	a := NewRectangle(0, 0, 3, 3)
	b := NewRectangle(2, 2, 5, 5)

	inter := a.Intersect(b).(Rectangle)
	assert.Equal(t, NewRectangle(2, 2, 3, 3), inter)

	union := a.Union(b).(Rectangle)
	assert.Equal(t, NewRectangle(0, 0, 5, 5), union)
}

func TestCube_ContainsAndCount(t *testing.T) {
	t.Parallel()

	c := NewCube(0, 0, 0, 1, 1, 1)
	assert.Equal(t, int64(8), c.Count())
	assert.True(t, c.Contains(cell.New(1, 1, 1)))
	assert.False(t, c.Contains(cell.New(2, 0, 0)))
}

func TestHexParallelogram_EnumerateAxial(t *testing.T) {
	t.Parallel()

	h := NewHexParallelogram(0, 0, 1, 1)
	cells := h.Enumerate()
	assert.Len(t, cells, 4)
	assert.Contains(t, cells, cell.New(0, 0, 0))
	assert.Contains(t, cells, cell.New(1, 1, 0))
}

func TestTriangleParallelogram_TwoCellsPerAxialPair(t *testing.T) {
	t.Parallel()

	tp := NewTriangleParallelogram(0, 0, 0, 0)
	cells := tp.Enumerate()
	require.Len(t, cells, 2)
	for _, c := range cells {
		sum := c.X + c.Y + c.Z
		assert.True(t, sum == 1 || sum == 2)
		assert.True(t, tp.Contains(c))
	}
}

func TestMask_DeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	m := NewMask([]cell.Cell{cell.New(1, 0, 0), cell.New(0, 0, 0), cell.New(0, 0, 0)})
	assert.Equal(t, int64(2), m.Count())
	assert.True(t, m.Contains(cell.New(0, 0, 0)))
	assert.True(t, m.Contains(cell.New(1, 0, 0)))
	assert.False(t, m.Contains(cell.New(2, 0, 0)))
}

func TestCrossVariantIntersectDegradesToMask(t *testing.T) {
	t.Parallel()

	r := NewRectangle(0, 0, 2, 2)
	h := NewHexParallelogram(1, 1, 3, 3)

	result := r.Intersect(h)
	_, isMask := result.(Mask)
	require.True(t, isMask)
	assert.Equal(t, int64(4), result.Count())
	assert.True(t, result.Contains(cell.New(1, 1, 0)))
}

func TestEnumerateBuffer_TooSmall(t *testing.T) {
	t.Parallel()

	r := NewRectangle(0, 0, 1, 1)
	buf := make([]cell.Cell, 2)
	n, err := EnumerateBuffer(r, buf)
	assert.Equal(t, 2, n)
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestFromAABB(t *testing.T) {
	t.Parallel()

	b := FromAABB([]cell.Cell{cell.New(0, 0, 0), cell.New(1, 0, 0)})
	assert.Equal(t, int64(2), b.Count())
}
