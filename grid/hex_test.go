package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// Scenario 3 from spec.md §8: flat-top hex, size=1.0, cell (2,-1), move E.
func TestHexGrid_MoveReversibilityScenario3(t *testing.T) {
	t.Parallel()

	g := grid.NewHexGrid(1.0, grid.HexFlatTop)
	step, ok := g.TryMove(cell.New(2, -1, 0), celltype.HexE)
	require.True(t, ok)
	assert.Equal(t, cell.New(3, -1, 0), step.Dest)
	assert.Equal(t, celltype.HexW, step.InverseDir)

	back, ok := g.TryMove(step.Dest, step.InverseDir)
	require.True(t, ok)
	assert.Equal(t, cell.New(2, -1, 0), back.Dest)
}

// Scenario 4 from spec.md §8: axial (2,-3) converts to cube (2,1,-3).
func TestHexGrid_AxialToCubeScenario4(t *testing.T) {
	t.Parallel()

	c := grid.AxialToCube(2, -3)
	assert.Equal(t, cell.New(2, 1, -3), c)
	assert.Zero(t, c.X+c.Y+c.Z)
}

// Scenario 5 from spec.md §8: pointy-top hex, size=2.0, cell (-1,3).
func TestHexGrid_CellCenterScenario5(t *testing.T) {
	t.Parallel()

	g := grid.NewHexGrid(2.0, grid.HexPointyTop)
	center := g.CellCenter(cell.New(-1, 3, 0))
	assert.InDelta(t, 1.7320508075688772, float64(center.X), 1e-4)
	assert.InDelta(t, 9.0, float64(center.Y), 1e-4)
	assert.Zero(t, center.Z)
}

func TestHexGrid_FindCellRoundTrip(t *testing.T) {
	t.Parallel()

	for _, orient := range []grid.HexOrientation{grid.HexFlatTop, grid.HexPointyTop} {
		g := grid.NewHexGrid(1.5, orient)
		for _, c := range []cell.Cell{cell.New(0, 0, 0), cell.New(4, -2, 0), cell.New(-3, 5, 0)} {
			pos := g.CellCenter(c)
			found, ok := g.FindCell(pos)
			require.True(t, ok)
			assert.Equal(t, c, found)
		}
	}
}

func TestHexGrid_AllSixDirectionsReversible(t *testing.T) {
	t.Parallel()

	g := grid.NewHexGrid(1.0, grid.HexFlatTop)
	c := cell.New(0, 0, 0)
	for d := cell.Direction(0); d < 6; d++ {
		step, ok := g.TryMove(c, d)
		require.True(t, ok)
		back, ok := g.TryMove(step.Dest, step.InverseDir)
		require.True(t, ok)
		assert.Equal(t, c, back.Dest)
	}
}
