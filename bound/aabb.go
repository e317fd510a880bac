package bound

import "github.com/katalvlaran/sylves/cell"

// FromAABB returns the Bound containing exactly the given cells — the
// grid-space resolution of a geometric AABB query. A grid's geometry (cell
// centers and extents) is required to turn a world-space box into a cell
// set, so callers compute cells via their grid's AABB query and hand the
// result here; the returned Bound is a plain Mask over those cells and
// carries no record of the query box (spec.md §3's AABB(float box) variant).
func FromAABB(cells []cell.Cell) Bound {
	return NewMask(cells)
}
