package pathfind

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// bfsEntry is BFS's arena slot: an integer distance instead of a float
// score, since every traversed edge has weight 1, per spec.md §4.6.
type bfsEntry struct {
	cell     cell.Cell
	distance int
	hasStep  bool
	step     grid.Step
}

// BFSResult is the outcome of a BFSRun.
type BFSResult struct {
	sourceIdx int
	entries   []bfsEntry
	index     map[cell.Cell]int
}

func (r *BFSResult) entryFor(c cell.Cell) int {
	if i, ok := r.index[c]; ok {
		return i
	}
	i := len(r.entries)
	r.entries = append(r.entries, bfsEntry{cell: c})
	r.index[c] = i
	return i
}

// BFSRun performs a breadth-first search from source, treating every live,
// accessible edge as weight 1, per spec.md §4.6. opts.Accessible replaces
// StepLength as the edge filter; opts.MaxDistance bounds how far the
// search expands (cells beyond it are never enqueued for expansion, though
// already-queued cells at the boundary are still finalized).
func BFSRun(g grid.Grid, source cell.Cell, opts ...Option) (*BFSResult, error) {
	cfg := buildOptions(opts...)
	if !g.IsCellInGrid(source) {
		return nil, ErrSourceNotInGrid
	}

	r := &BFSResult{index: make(map[cell.Cell]int)}
	r.sourceIdx = r.entryFor(source)

	queue := []int{r.sourceIdx}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		e := r.entries[i]
		if e.distance >= cfg.MaxDistance {
			continue
		}
		for _, d := range g.CellDirs(e.cell) {
			step, ok := g.TryMove(e.cell, d)
			if !ok {
				continue
			}
			if !cfg.Accessible(step.Dest) {
				continue
			}
			j := r.entryFor(step.Dest)
			if j == r.sourceIdx || r.entries[j].hasStep {
				continue // already reached at an equal-or-shorter distance
			}
			r.entries[j].distance = e.distance + 1
			r.entries[j].hasStep = true
			r.entries[j].step = step
			queue = append(queue, j)
		}
	}
	return r, nil
}

// Distance returns the number of steps to reach c, and false if unreached.
func (r *BFSResult) Distance(c cell.Cell) (int, bool) {
	i, ok := r.index[c]
	if !ok || (i != r.sourceIdx && !r.entries[i].hasStep) {
		return 0, false
	}
	return r.entries[i].distance, true
}

// PathTo reconstructs the path to target, or ErrNoPath if target was not
// reached.
func (r *BFSResult) PathTo(target cell.Cell) (CellPath, error) {
	i, ok := r.index[target]
	if !ok {
		return CellPath{}, ErrNoPath
	}
	if i == r.sourceIdx {
		return CellPath{}, nil
	}
	if !r.entries[i].hasStep {
		return CellPath{}, ErrNoPath
	}

	var steps []grid.Step
	for i != r.sourceIdx {
		e := r.entries[i]
		steps = append(steps, e.step)
		i = r.index[e.step.Src]
	}
	for l, rr := 0, len(steps)-1; l < rr; l, rr = l+1, rr-1 {
		steps[l], steps[rr] = steps[rr], steps[l]
	}
	var total float32
	for _, st := range steps {
		total += st.Length
	}
	return CellPath{Steps: steps, TotalLength: total}, nil
}
