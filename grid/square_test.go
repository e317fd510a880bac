package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
	"github.com/katalvlaran/sylves/grid"
)

func TestSquareGrid_MoveIsReversible(t *testing.T) {
	t.Parallel()

	g := grid.NewSquareGrid(1.0)
	c := cell.New(4, 4, 0)
	for d := cell.Direction(0); d < 4; d++ {
		step, ok := g.TryMove(c, d)
		require.True(t, ok)
		back, ok := g.TryMove(step.Dest, step.InverseDir)
		require.True(t, ok)
		assert.Equal(t, c, back.Dest)
	}
}

// Scenario 1 from spec.md §8: unit square grid, cell center spacing of 1.0.
func TestSquareGrid_UnitStepLength(t *testing.T) {
	t.Parallel()

	g := grid.NewSquareGrid(1.0)
	step, ok := g.TryMove(cell.New(0, 0, 0), 0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, step.Length, 1e-6)
}

func TestSquareGrid_FindCellRoundTrip(t *testing.T) {
	t.Parallel()

	g := grid.NewSquareGrid(2.5)
	for _, c := range []cell.Cell{cell.New(0, 0, 0), cell.New(3, -2, 0), cell.New(-7, 9, 0)} {
		pos := g.CellCenter(c)
		found, ok := g.FindCell(pos)
		require.True(t, ok)
		assert.Equal(t, c, found)
	}
}

func TestSquareGrid_BoundIndexBijection(t *testing.T) {
	t.Parallel()

	rect := bound.NewRectangle(0, 0, 4, 4)
	g := grid.NewSquareGrid(1.0).BoundBy(rect)

	count, err := g.IndexCount()
	require.NoError(t, err)
	assert.Equal(t, rect.Count(), count)

	seen := make(map[int64]cell.Cell, count)
	for i := int64(0); i < count; i++ {
		c, err := g.CellByIndex(i)
		require.NoError(t, err)
		seen[i] = c
		idx, ok := g.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.Len(t, seen, int(count))
}

func TestSquareGrid_BoundByThenUnbounded(t *testing.T) {
	t.Parallel()

	rect := bound.NewRectangle(0, 0, 2, 2)
	bounded := grid.NewSquareGrid(1.0).BoundBy(rect)
	assert.True(t, bounded.IsFinite())

	again := bounded.Unbounded()
	assert.False(t, again.IsFinite())
	assert.True(t, again.IsCellInGrid(cell.New(100, 100, 0)))
}

func TestSquareGrid_CellSizeAndDescribe(t *testing.T) {
	t.Parallel()

	g := grid.NewSquareGrid(1.5)
	assert.InDelta(t, 1.5, g.CellSize(), 1e-6)
	assert.Equal(t, "Square(cellSize=1.5, unbounded)", g.Describe())

	bounded := g.BoundBy(bound.NewRectangle(0, 0, 1, 1))
	assert.Equal(t, "Square(cellSize=1.5, bounded)", bounded.Describe())
}

func TestSquareGrid_CellsInAABBIsSupersetOfExactCells(t *testing.T) {
	t.Parallel()

	g := grid.NewSquareGrid(1.0)
	found := g.CellsInAABB(geom.Vec3{X: 0, Y: 0}, geom.Vec3{X: 3, Y: 3})

	want := map[cell.Cell]bool{}
	for x := int32(0); x < 3; x++ {
		for y := int32(0); y < 3; y++ {
			want[cell.New(x, y, 0)] = true
		}
	}
	got := map[cell.Cell]bool{}
	for _, c := range found {
		got[c] = true
	}
	for c := range want {
		assert.True(t, got[c], "missing expected cell %v", c)
	}
}
