package pathfind

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// ManhattanHeuristic returns a Heuristic estimating the remaining cost to
// target as the scaled L1 distance between cell coordinates, per spec.md
// §4.6's sylves_heuristic_manhattan.
func ManhattanHeuristic(target cell.Cell, scale float32) Heuristic {
	return func(c cell.Cell) float32 {
		return float32(abs32(c.X-target.X)+abs32(c.Y-target.Y)+abs32(c.Z-target.Z)) * scale
	}
}

// EuclideanHeuristic returns a Heuristic estimating the remaining cost to
// target as the Euclidean distance between cell centers in g, per spec.md
// §4.6's sylves_heuristic_euclidean.
func EuclideanHeuristic(g grid.Grid, target cell.Cell) Heuristic {
	targetCenter := g.CellCenter(target)
	return func(c cell.Cell) float32 {
		return g.CellCenter(c).Sub(targetCenter).Length()
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
