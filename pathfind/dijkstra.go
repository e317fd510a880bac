package pathfind

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// DijkstraResult is the outcome of a DijkstraRun: a snapshot of every cell
// finalized (popped with a non-stale key) during the search, reusable to
// extract any number of shortest paths or query the full distance map.
type DijkstraResult struct {
	s         *searchState
	sourceIdx int
}

// DijkstraRun computes shortest-path distances from source to every cell
// reachable within opts.MaxRange (default: unbounded), per spec.md §4.6.
// The loop terminates as soon as a popped key exceeds MaxRange, so cells
// beyond the range are never finalized even if a closer neighbor discovered
// them during relaxation.
func DijkstraRun(g grid.Grid, source cell.Cell, opts ...Option) (*DijkstraResult, error) {
	cfg := buildOptions(opts...)
	if !g.IsCellInGrid(source) {
		return nil, ErrSourceNotInGrid
	}

	s := newSearchState(g, cfg)
	sourceIdx := s.entryFor(source)
	s.entries[sourceIdx].score = 0
	s.pq.Push(sourceIdx, 0)

	for !s.pq.IsEmpty() {
		item := s.pq.Pop()
		i := item.Value.(int)
		key := float32(item.Key)

		if key > cfg.MaxRange {
			break
		}
		if key > s.entries[i].score {
			continue // stale
		}
		s.entries[i].finalized = true
		s.relax(i, func(tentative float32, dest cell.Cell) float32 { return tentative })
	}

	return &DijkstraResult{s: s, sourceIdx: sourceIdx}, nil
}

// PathTo reconstructs the shortest path to target, or ErrNoPath if target
// was not finalized within the run's MaxRange.
func (r *DijkstraResult) PathTo(target cell.Cell) (CellPath, error) {
	i, ok := r.s.index[target]
	if !ok || !r.s.entries[i].finalized {
		return CellPath{}, ErrNoPath
	}
	return r.s.reconstruct(r.sourceIdx, i)
}

// Distance returns the shortest distance to c, and false if c was not
// finalized by the run.
func (r *DijkstraResult) Distance(c cell.Cell) (float32, bool) {
	i, ok := r.s.index[c]
	if !ok || !r.s.entries[i].finalized {
		return 0, false
	}
	return r.s.entries[i].score, true
}

// Distances returns the shortest distance from source to every cell the
// run finalized, per spec.md §4.6's get_distances.
func (r *DijkstraResult) Distances() map[cell.Cell]float32 {
	out := make(map[cell.Cell]float32, len(r.s.entries))
	for _, e := range r.s.entries {
		if e.finalized {
			out[e.cell] = e.score
		}
	}
	return out
}

// Visited returns the number of cells finalized by the run.
func (r *DijkstraResult) Visited() int {
	n := 0
	for _, e := range r.s.entries {
		if e.finalized {
			n++
		}
	}
	return n
}
