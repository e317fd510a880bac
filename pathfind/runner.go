package pathfind

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/pqueue"
)

// visitEntry is one arena slot in a search's visited set, per spec.md §9's
// "pathfinding visited as arena+index" design note: entries live in a
// slice, and the heap/hash map carry only array indices rather than raw
// pointers.
type visitEntry struct {
	cell      cell.Cell
	score     float32
	hasStep   bool
	step      grid.Step
	finalized bool // set once popped with a non-stale key (Dijkstra only)
}

// searchState is the shared mutable state of an A*/Dijkstra run: an entry
// arena, a cell->index map, and the lazy-relaxation heap grounded on
// pqueue.Queue (itself grounded on the teacher's dijkstra.nodePQ).
type searchState struct {
	g       grid.Grid
	opts    Options
	entries []visitEntry
	index   map[cell.Cell]int
	pq      *pqueue.Queue
}

func newSearchState(g grid.Grid, opts Options) *searchState {
	return &searchState{
		g:     g,
		opts:  opts,
		index: make(map[cell.Cell]int),
		pq:    pqueue.New(64),
	}
}

// reset clears a searchState for reuse with new options, retaining the
// entries slice's and index map's backing storage — grounded on
// pqueue.Queue.Clear's "empty, keep capacity" discipline.
func (s *searchState) reset(opts Options) {
	s.opts = opts
	s.entries = s.entries[:0]
	for k := range s.index {
		delete(s.index, k)
	}
	s.pq.Clear()
}

// entryFor returns the arena index for c, allocating an unvisited entry
// (score = +Inf) on first reference.
func (s *searchState) entryFor(c cell.Cell) int {
	if i, ok := s.index[c]; ok {
		return i
	}
	i := len(s.entries)
	s.entries = append(s.entries, visitEntry{cell: c, score: float32(math.Inf(1))})
	s.index[c] = i
	return i
}

// relax enumerates the live directions from the cell at entries[i], builds
// a Step for each, and pushes any neighbor whose tentative score improves,
// per spec.md §4.6's main loop step 3.
func (s *searchState) relax(i int, keyOf func(tentative float32, dest cell.Cell) float32) {
	c := s.entries[i].cell
	score := s.entries[i].score
	for _, d := range s.g.CellDirs(c) {
		step, ok := s.g.TryMove(c, d)
		if !ok {
			continue
		}
		if !s.opts.Accessible(step.Dest) {
			continue
		}
		length := s.opts.StepLength(step)
		if length < 0 {
			continue
		}
		tentative := score + length
		j := s.entryFor(step.Dest)
		if tentative < s.entries[j].score {
			s.entries[j].score = tentative
			s.entries[j].hasStep = true
			s.entries[j].step = step
			s.pq.Push(j, float64(keyOf(tentative, step.Dest)))
		}
	}
}

// reconstruct walks entries[targetIdx].step back to the source, per
// spec.md §4.6's path extraction. It returns ErrNoPath if a cell on the
// walk has no recorded step and is not the source.
func (s *searchState) reconstruct(sourceIdx, targetIdx int) (CellPath, error) {
	if targetIdx == sourceIdx {
		return CellPath{}, nil
	}
	var steps []grid.Step
	i := targetIdx
	for i != sourceIdx {
		e := s.entries[i]
		if !e.hasStep {
			return CellPath{}, ErrNoPath
		}
		steps = append(steps, e.step)
		i = s.index[e.step.Src]
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	var total float32
	for _, st := range steps {
		total += st.Length
	}
	return CellPath{Steps: steps, TotalLength: total}, nil
}
