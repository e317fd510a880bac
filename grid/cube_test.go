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

// Scenario 7 from spec.md §8: cube grid, size=2.0, find_cell(3,3,2) -> (1,1,1).
func TestCubeGrid_FindCellScenario7(t *testing.T) {
	t.Parallel()

	g := grid.NewCubeGrid(2.0)
	c, ok := g.FindCell(geom.Vec3{X: 3, Y: 3, Z: 2})
	require.True(t, ok)
	assert.Equal(t, cell.New(1, 1, 1), c)
}

func TestCubeGrid_MoveIsReversible(t *testing.T) {
	t.Parallel()

	g := grid.NewCubeGrid(1.0)
	c := cell.New(5, 5, 5)
	for d := cell.Direction(0); d < 6; d++ {
		step, ok := g.TryMove(c, d)
		require.True(t, ok)
		back, ok := g.TryMove(step.Dest, step.InverseDir)
		require.True(t, ok)
		assert.Equal(t, c, back.Dest)
	}
}

func TestCubeGrid_BoundIndexBijection(t *testing.T) {
	t.Parallel()

	cb := bound.NewCube(0, 0, 0, 1, 1, 1)
	g := grid.NewCubeGrid(1.0).BoundBy(cb)

	count, err := g.IndexCount()
	require.NoError(t, err)
	assert.EqualValues(t, 8, count)

	for i := int64(0); i < count; i++ {
		c, err := g.CellByIndex(i)
		require.NoError(t, err)
		idx, ok := g.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestCubeGrid_PolygonUnsupported(t *testing.T) {
	t.Parallel()

	g := grid.NewCubeGrid(1.0)
	_, err := g.Polygon(cell.New(0, 0, 0))
	assert.ErrorIs(t, err, grid.ErrNotSupported)
}
