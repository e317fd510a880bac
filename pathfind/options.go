package pathfind

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// StepLength overrides a step's traversal cost. Returning a negative value
// marks the step invalid; the edge is skipped, per spec.md §6.
type StepLength func(step grid.Step) float32

// Heuristic estimates the remaining cost from a cell to the search's
// target. A* requires heuristic(c) >= 0 and heuristic(target) == 0; it
// must be admissible (never overestimate the true shortest distance) for
// the result to be optimal, per spec.md §4.6.
type Heuristic func(c cell.Cell) float32

// Accessible reports whether a cell may be entered; false marks it
// non-traversable.
type Accessible func(c cell.Cell) bool

// Options configures a pathfinding run. Build one with the With* functional
// options below; zero-value fields are filled in from DefaultOptions.
type Options struct {
	StepLength  StepLength // default: the grid's own step.Length
	Heuristic   Heuristic  // default: zero (degrades A* to Dijkstra); overridden by AStar's argument
	Accessible  Accessible // default: every cell accessible
	MaxRange    float32    // Dijkstra only; default: +Inf (no cap)
	MaxDistance int        // BFS only; default: no cap
}

// Option is a functional option for Options, in the style of the teacher's
// dijkstra.Option.
type Option func(*Options)

// WithStepLength overrides the default step.Length cost used to relax
// edges.
func WithStepLength(f StepLength) Option {
	return func(o *Options) { o.StepLength = f }
}

// WithHeuristic sets the A* heuristic. Has no effect on Dijkstra or BFS
// runs, and is overridden by AStar's own heuristic argument.
func WithHeuristic(f Heuristic) Option {
	return func(o *Options) { o.Heuristic = f }
}

// WithAccessible marks cells non-traversable.
func WithAccessible(f Accessible) Option {
	return func(o *Options) { o.Accessible = f }
}

// WithMaxRange bounds a Dijkstra run: the loop terminates once the popped
// key exceeds max, per spec.md §4.6.
func WithMaxRange(max float32) Option {
	return func(o *Options) { o.MaxRange = max }
}

// WithMaxDistance bounds a BFS run: expansion stops past distance max from
// the source.
func WithMaxDistance(max int) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns Options with every field set to its documented
// default.
func DefaultOptions() Options {
	return Options{
		StepLength:  func(s grid.Step) float32 { return s.Length },
		Heuristic:   func(cell.Cell) float32 { return 0 },
		Accessible:  func(cell.Cell) bool { return true },
		MaxRange:    float32(math.Inf(1)),
		MaxDistance: math.MaxInt32,
	}
}

func buildOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
