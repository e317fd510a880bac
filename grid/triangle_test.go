package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/grid"
)

// Scenario 6 from spec.md §8: flat-topped triangle, down-pointing cell
// (0,0,1), live directions {1,4,5}.
func TestTriangleGrid_LiveDirsScenario6(t *testing.T) {
	t.Parallel()

	g := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	dirs := g.CellDirs(cell.New(0, 0, 1))
	want := map[cell.Direction]bool{celltype.TriXInc: true, celltype.TriYInc: true, celltype.TriZInc: true}
	got := map[cell.Direction]bool{}
	for _, d := range dirs {
		got[d] = true
	}
	assert.Equal(t, want, got)
}

func TestTriangleGrid_MoveIsReversible(t *testing.T) {
	t.Parallel()

	g := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	for _, c := range []cell.Cell{cell.New(0, 0, 2), cell.New(0, 0, 1), cell.New(2, -1, 1)} {
		for _, d := range g.CellDirs(c) {
			step, ok := g.TryMove(c, d)
			require.True(t, ok)
			back, ok := g.TryMove(step.Dest, step.InverseDir)
			require.True(t, ok)
			assert.Equal(t, c, back.Dest)
		}
	}
}

func TestTriangleGrid_AdjacentCellsEqualDisplacement(t *testing.T) {
	t.Parallel()

	g := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	c := cell.New(0, 0, 2)
	wantLen := float32(1) / float32(1.7320508075688772)
	for _, d := range g.CellDirs(c) {
		step, _ := g.TryMove(c, d)
		delta := g.CellCenter(step.Dest)
		src := g.CellCenter(c)
		dx := float64(delta.X - src.X)
		dy := float64(delta.Y - src.Y)
		dist := dx*dx + dy*dy
		assert.InDelta(t, float64(wantLen*wantLen), dist, 1e-4)
	}
}

func TestTriangleGrid_FindCellRoundTrip(t *testing.T) {
	t.Parallel()

	g := grid.NewTriangleGrid(1.0, grid.TriangleFlatTopped)
	for _, c := range []cell.Cell{cell.New(0, 0, 2), cell.New(0, 0, 1), cell.New(3, -1, 0), cell.New(-2, 2, 1)} {
		pos := g.CellCenter(c)
		found, ok := g.FindCell(pos)
		require.True(t, ok)
		assert.Equal(t, c, found)
	}
}
