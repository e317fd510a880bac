package pathfind

import "errors"

// Sentinel errors returned by the pathfinding runs, per spec.md §6.
var (
	// ErrNoPath indicates the target is unreachable, whether at all or
	// within the run's MaxRange/MaxDistance.
	ErrNoPath = errors.New("pathfind: no path found")

	// ErrSourceNotInGrid indicates the source cell is not addressable by
	// the grid (outside its topology or bound).
	ErrSourceNotInGrid = errors.New("pathfind: source not in grid")

	// ErrTargetNotInGrid indicates the source or target cell is not
	// addressable by the grid.
	ErrTargetNotInGrid = errors.New("pathfind: target not in grid")
)
