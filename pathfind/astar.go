package pathfind

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// AStar finds the shortest path from source to target in g, per spec.md
// §4.6. heuristic must be admissible (never overestimate the true
// shortest remaining distance) for the result to be optimal; an
// inadmissible heuristic still terminates but may return a suboptimal
// path. Ties on a popped key are broken by the pqueue heap's internal
// layout, not by insertion order: the heap compares keys only and is not
// stable. The order is still the same for identical inputs.
//
// Each call allocates a fresh search arena; callers issuing many searches
// against the same grid should use AStarRunner instead.
func AStar(g grid.Grid, source, target cell.Cell, heuristic Heuristic, opts ...Option) (CellPath, error) {
	cfg := buildOptions(opts...)
	cfg.Heuristic = heuristic
	if !g.IsCellInGrid(source) || !g.IsCellInGrid(target) {
		return CellPath{}, ErrTargetNotInGrid
	}
	if source == target {
		return CellPath{}, nil
	}
	return runAStar(newSearchState(g, cfg), source, target, cfg)
}

// AStarRunner is a reusable A* search over a fixed grid: repeated FindPath
// calls reuse the previous run's arena capacity instead of reallocating it,
// grounded on the teacher's dijkstra.runner/bfs.walker split between a
// one-shot function and an explicit stateful runner for repeated searches.
type AStarRunner struct {
	g    grid.Grid
	opts Options
	s    *searchState
}

// NewAStarRunner returns a runner over g with the given base options; each
// FindPath call supplies its own heuristic and target.
func NewAStarRunner(g grid.Grid, opts ...Option) *AStarRunner {
	return &AStarRunner{g: g, opts: buildOptions(opts...)}
}

// FindPath runs A* from source to target using heuristic, reusing the
// runner's arena.
func (r *AStarRunner) FindPath(source, target cell.Cell, heuristic Heuristic) (CellPath, error) {
	cfg := r.opts
	cfg.Heuristic = heuristic
	if !r.g.IsCellInGrid(source) || !r.g.IsCellInGrid(target) {
		return CellPath{}, ErrTargetNotInGrid
	}
	if source == target {
		return CellPath{}, nil
	}
	if r.s == nil {
		r.s = newSearchState(r.g, cfg)
	} else {
		r.s.reset(cfg)
	}
	return runAStar(r.s, source, target, cfg)
}

func runAStar(s *searchState, source, target cell.Cell, cfg Options) (CellPath, error) {
	sourceIdx := s.entryFor(source)
	s.entries[sourceIdx].score = 0
	s.pq.Push(sourceIdx, float64(cfg.Heuristic(source)))

	targetIdx := s.entryFor(target)

	for !s.pq.IsEmpty() {
		item := s.pq.Pop()
		i := item.Value.(int)
		key := float32(item.Key)

		// Stale check: the freshest possible key for this entry's current
		// best score is score + heuristic(cell); anything greater was
		// superseded by a later, cheaper push.
		if key > s.entries[i].score+cfg.Heuristic(s.entries[i].cell) {
			continue
		}
		if i == targetIdx {
			return s.reconstruct(sourceIdx, targetIdx)
		}
		s.relax(i, func(tentative float32, dest cell.Cell) float32 {
			return tentative + cfg.Heuristic(dest)
		})
	}
	return CellPath{}, ErrNoPath
}
