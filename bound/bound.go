package bound

import (
	"sort"

	"github.com/katalvlaran/sylves/cell"
)

// Bound is a finite, topology-tagged region of cells. Implementations are
// immutable value types; Rectangle, Cube, HexParallelogram and
// TriangleParallelogram are produced directly by callers, while Mask is
// also what cross-variant Intersect/Union and an AABB-origin bound degrade
// into (spec.md §4.3, §9).
type Bound interface {
	// Contains reports whether c lies within the bound.
	Contains(c cell.Cell) bool

	// Count returns the total number of cells in the bound.
	Count() int64

	// EnumerateInto writes cells in canonical order into buf, stopping
	// early if buf is shorter than Count(). It returns the number of cells
	// written, so callers can pre-query the count by passing a nil/zero
	// length buffer, matching spec.md §4.3.
	EnumerateInto(buf []cell.Cell) int

	// Enumerate allocates and returns every cell in the bound, in
	// canonical order.
	Enumerate() []cell.Cell

	// Intersect returns a Bound containing cells present in both b and
	// other. Same-variant pairs return the same variant with clamped
	// extents; anything else degrades to a Mask.
	Intersect(other Bound) Bound

	// Union returns a Bound containing cells present in either b or other.
	// Same-variant pairs return the same variant with expanded extents;
	// anything else degrades to a Mask.
	Union(other Bound) Bound
}

// Mask is a Bound backed by an explicit, arbitrarily-shaped set of cells —
// the universal fallback every cross-variant composition degrades to,
// since a mask does not need to preserve any particular topology's
// enumeration order (spec.md §9).
type Mask struct {
	set     map[cell.Cell]struct{}
	ordered []cell.Cell // sorted for deterministic enumeration
}

// NewMask returns a Mask containing exactly the given cells (duplicates
// collapse).
func NewMask(cells []cell.Cell) Mask {
	set := make(map[cell.Cell]struct{}, len(cells))
	ordered := make([]cell.Cell, 0, len(cells))
	for _, c := range cells {
		if _, ok := set[c]; ok {
			continue
		}
		set[c] = struct{}{}
		ordered = append(ordered, c)
	}
	sortCells(ordered)
	return Mask{set: set, ordered: ordered}
}

func sortCells(cells []cell.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}

func (m Mask) Contains(c cell.Cell) bool {
	_, ok := m.set[c]
	return ok
}

func (m Mask) Count() int64 { return int64(len(m.ordered)) }

func (m Mask) EnumerateInto(buf []cell.Cell) int {
	return copy(buf, m.ordered)
}

func (m Mask) Enumerate() []cell.Cell {
	out := make([]cell.Cell, len(m.ordered))
	copy(out, m.ordered)
	return out
}

func (m Mask) Intersect(other Bound) Bound {
	var out []cell.Cell
	for _, c := range m.ordered {
		if other.Contains(c) {
			out = append(out, c)
		}
	}
	return NewMask(out)
}

func (m Mask) Union(other Bound) Bound {
	out := append([]cell.Cell{}, m.ordered...)
	out = append(out, other.Enumerate()...)
	return NewMask(out)
}

// maskIntersect and maskUnion let concrete variants implement cross-variant
// composition by degrading both sides to their own enumeration.
func maskIntersect(b Bound, other Bound) Bound {
	return NewMask(b.Enumerate()).Intersect(other)
}

func maskUnion(b Bound, other Bound) Bound {
	return NewMask(b.Enumerate()).Union(other)
}
