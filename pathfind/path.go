package pathfind

import "github.com/katalvlaran/sylves/grid"

// CellPath is an ordered sequence of Steps plus their summed length, per
// spec.md §3. Consecutive steps share endpoints: steps[i].Dest ==
// steps[i+1].Src. A zero-length path (source == target) has a nil Steps
// slice and TotalLength 0.
type CellPath struct {
	Steps       []grid.Step
	TotalLength float32
}
