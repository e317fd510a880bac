package grid

import (
	"fmt"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/geom"
)

// Step describes one elementary move from Src to Dest, per spec.md §3.
// Invariant: following Dir from Src yields Dest; following InverseDir from
// Dest yields Src. Length is the grid's default geometric cost (the
// distance between cell centers); pathfinding callers may override it with
// a custom StepLength callback.
type Step struct {
	Src, Dest       cell.Cell
	Dir, InverseDir cell.Direction
	Connection      cell.Connection
	Length          float32
}

// Grid is the uniform navigation contract every topology implements, per
// spec.md §4.4. All methods are safe for concurrent use: a Grid is
// immutable once constructed, and BoundBy/Unbounded return a new value
// rather than mutating the receiver.
type Grid interface {
	// IsPlanar reports whether cells lie in a single z=0 plane.
	IsPlanar() bool
	// Is3D reports whether the grid has three addressable coordinate axes.
	Is3D() bool
	// IsFinite reports whether the grid currently carries a bound.
	IsFinite() bool

	// CellType returns the per-topology algebra for c, and false if c is
	// not addressable by this grid's topology (bound is not considered).
	CellType(c cell.Cell) (celltype.CellType, bool)

	// IsCellInGrid reports whether c is addressable and within the grid's
	// bound (always true for an unbounded grid's addressable cells).
	IsCellInGrid(c cell.Cell) bool

	// TryMove attempts to step from c in direction d. ok is false if c is
	// not in the grid, d is not live for c, or the destination falls
	// outside the bound.
	TryMove(c cell.Cell, d cell.Direction) (step Step, ok bool)

	// CellDirs returns the live directions for c — the subset of
	// [0, DirCount) for which TryMove succeeds.
	CellDirs(c cell.Cell) []cell.Direction

	// CellCorners returns the corner indices for c.
	CellCorners(c cell.Cell) []cell.Corner

	// CellCenter returns the world-space position of c's center.
	CellCenter(c cell.Cell) geom.Vec3

	// CellCornerPos returns the world-space position of corner k of c.
	CellCornerPos(c cell.Cell, k cell.Corner) (geom.Vec3, error)

	// CellAabb returns the world-space bounding box of c.
	CellAabb(c cell.Cell) geom.Aabb

	// Polygon returns c's corner positions in CCW order. Only defined for
	// 2D grids; 3D grids return ErrNotSupported.
	Polygon(c cell.Cell) ([]geom.Vec3, error)

	// FindCell returns the cell whose extent contains pos, using
	// topology-specific rounding.
	FindCell(pos geom.Vec3) (cell.Cell, bool)

	// CellsInAABB returns a conservative superset of the in-grid cells
	// whose AABB overlaps [min, max]: every overlapping cell is included
	// exactly once, but the result may also include non-overlapping cells.
	CellsInAABB(min, max geom.Vec3) []cell.Cell

	// IndexCount returns the number of cells addressable by Index, or
	// ErrUnbounded if the grid has no bound.
	IndexCount() (int64, error)

	// Index returns c's position in enumeration order. ok is false if c is
	// not in the grid or the grid is unbounded.
	Index(c cell.Cell) (idx int64, ok bool)

	// CellByIndex is the inverse of Index.
	CellByIndex(i int64) (cell.Cell, error)

	// Bound returns the grid's current bound, and false if unbounded.
	Bound() (bound.Bound, bool)

	// BoundBy returns a grid identical to the receiver but bounded by b.
	BoundBy(b bound.Bound) Grid

	// Unbounded returns a grid identical to the receiver but without a
	// bound.
	Unbounded() Grid

	// CellSize returns the grid's linear cell scale (edge length for
	// square/triangle, circumradius for hex, edge length for cube/prism
	// base), as passed to its constructor.
	CellSize() float32

	// Describe returns a short human-readable summary of the grid's
	// topology, cell size, and bound presence, for logging and test output.
	Describe() string
}

// distance returns the Euclidean distance between two points, used by every
// concrete grid to compute a Step's default Length.
func distance(a, b geom.Vec3) float32 {
	return a.Sub(b).Length()
}

// describeGrid formats the common "Topology(cellSize=..., bounded/unbounded)"
// summary shared by every concrete Grid's Describe method.
func describeGrid(topology string, cellSize float32, bounded bool) string {
	state := "unbounded"
	if bounded {
		state = "bounded"
	}
	return fmt.Sprintf("%s(cellSize=%g, %s)", topology, cellSize, state)
}
