package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

func TestSquarePrismGrid_InPlaneMoveMatchesBase(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 2.0).WithLayerBound(0, 3)

	c := cell.New(2, 2, 1)
	step, ok := g.TryMove(c, 0) // square right
	require.True(t, ok)
	assert.Equal(t, cell.New(3, 2, 1), step.Dest)

	back, ok := g.TryMove(step.Dest, step.InverseDir)
	require.True(t, ok)
	assert.Equal(t, c, back.Dest)
}

func TestSquarePrismGrid_VerticalMove(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 2.0).WithLayerBound(0, 3)

	c := cell.New(0, 0, 1)
	up, ok := g.TryMove(c, 4) // zPlus = baseDirCount(4)
	require.True(t, ok)
	assert.Equal(t, cell.New(0, 0, 2), up.Dest)
	assert.InDelta(t, 2.0, up.Length, 1e-6)

	down, ok := g.TryMove(up.Dest, up.InverseDir)
	require.True(t, ok)
	assert.Equal(t, c, down.Dest)
}

func TestSquarePrismGrid_LayerBoundIsRespected(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 1.0).WithLayerBound(0, 1)

	assert.True(t, g.IsCellInGrid(cell.New(0, 0, 1)))
	assert.False(t, g.IsCellInGrid(cell.New(0, 0, 2)))

	_, ok := g.TryMove(cell.New(0, 0, 1), 4)
	assert.False(t, ok)
}

func TestSquarePrismGrid_CellCenterZ(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 2.0)
	center := g.CellCenter(cell.New(0, 0, 1))
	assert.InDelta(t, 3.0, center.Z, 1e-6) // (1 + 0.5) * 2.0
}

func TestHexPrismGrid_VerticalMove(t *testing.T) {
	t.Parallel()

	base := grid.NewHexGrid(1.0, grid.HexFlatTop)
	g := grid.NewHexPrismGrid(base, 1.0).WithLayerBound(0, 2)

	c := cell.New(0, 0, 0)
	step, ok := g.TryMove(c, 6) // zPlus = baseDirCount(6)
	require.True(t, ok)
	assert.EqualValues(t, 1, step.Dest.Z)
}

// TestTrianglePrismGrid_VerticalMove exercises the baseDirCount=6 fix: a
// triangle base's celltype.Prism wrapping places +Z/-Z at directions 6/7
// (celltype.Prism derives zPlus from the base CellType's full six-slot
// DirCount, not the three directions actually live per cell), so the grid
// layer's zPlusDir/zMinusDir must use the same baseDirCount=6 to stay in
// step with it.
func TestTrianglePrismGrid_VerticalMove(t *testing.T) {
	t.Parallel()

	base := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	g := grid.NewTrianglePrismGrid(base, 1.0).WithLayerBound(0, 2)

	// Prism cells address only the up-pointing half of the base tiling:
	// (x, y, layer), with the base triangle's third coordinate derived as
	// 2-x-y (sum 2, "up"). See PrismGrid's baseCell doc comment.
	c := cell.New(0, 0, 0)
	up, ok := g.TryMove(c, 6) // zPlus = baseDirCount(6)
	require.True(t, ok)
	assert.Equal(t, cell.New(0, 0, 1), up.Dest)
	assert.InDelta(t, 1.0, up.Length, 1e-6)

	down, ok := g.TryMove(up.Dest, up.InverseDir)
	require.True(t, ok)
	assert.Equal(t, c, down.Dest)
}

func TestSquarePrismGrid_BoundByBoundsXYAndZ(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 1.0).BoundBy(bound.NewCube(0, 0, 0, 2, 2, 1))

	assert.True(t, g.IsCellInGrid(cell.New(0, 0, 0)))
	assert.True(t, g.IsCellInGrid(cell.New(2, 2, 1)))
	assert.False(t, g.IsCellInGrid(cell.New(3, 0, 0)), "X outside the cube's extent must be excluded")
	assert.False(t, g.IsCellInGrid(cell.New(0, 3, 0)), "Y outside the cube's extent must be excluded")
	assert.False(t, g.IsCellInGrid(cell.New(0, 0, 2)), "Z outside the cube's extent must be excluded")

	again := g.Unbounded()
	assert.False(t, again.IsFinite())
	assert.True(t, again.IsCellInGrid(cell.New(100, 100, 100)))
}

func TestHexPrismGrid_BoundByBoundsXY(t *testing.T) {
	t.Parallel()

	base := grid.NewHexGrid(1.0, grid.HexFlatTop)
	g := grid.NewHexPrismGrid(base, 1.0).BoundBy(bound.NewCube(0, 0, 0, 1, 1, 0))

	assert.True(t, g.IsCellInGrid(cell.New(1, 1, 0)))
	assert.False(t, g.IsCellInGrid(cell.New(5, 5, 0)), "axial coordinates outside the cube's extent must be excluded")
}

func TestTrianglePrismGrid_BoundByBoundsXY(t *testing.T) {
	t.Parallel()

	base := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	g := grid.NewTrianglePrismGrid(base, 1.0).BoundBy(bound.NewCube(0, 0, 0, 1, 1, 0))

	assert.True(t, g.IsCellInGrid(cell.New(1, 1, 0)))
	assert.False(t, g.IsCellInGrid(cell.New(5, 5, 0)))
}

func TestPrismGrid_BoundByRejectsNonCubeBound(t *testing.T) {
	t.Parallel()

	base := grid.NewSquareGrid(1.0)
	g := grid.NewSquarePrismGrid(base, 1.0)

	assert.Panics(t, func() {
		g.BoundBy(bound.NewRectangle(0, 0, 2, 2))
	})
}
