package grid

import "errors"

// Sentinel errors returned by Grid implementations, forming a subset of the
// closed error taxonomy of spec.md §6-7.
var (
	// ErrCellNotInGrid is returned when an operation is given a cell outside
	// the grid's bound, or otherwise not addressable by its topology.
	ErrCellNotInGrid = errors.New("grid: cell not in grid")

	// ErrUnbounded is returned by indexing and enumeration operations that
	// require a finite bound when the grid has none.
	ErrUnbounded = errors.New("grid: operation requires a bound")

	// ErrNotSupported is returned when an operation does not apply to a
	// grid's dimensionality (e.g. Polygon on a 3D grid).
	ErrNotSupported = errors.New("grid: operation not supported for this topology")

	// ErrNotImplemented is returned by optional operations a grid does not
	// provide (e.g. Raycast), per spec.md §4.4's "grids without raycast
	// return NotImplemented".
	ErrNotImplemented = errors.New("grid: not implemented")

	// ErrIndexOutOfRange is returned by CellByIndex when the index falls
	// outside [0, IndexCount).
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrBufferTooSmall is returned by buffer-filling enumeration helpers
	// when the caller's buffer cannot hold every result.
	ErrBufferTooSmall = errors.New("grid: buffer too small")
)
