package grid

import (
	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
)

// boundIndex precomputes the Index/CellByIndex bijection for a bounded
// grid's cell set, in the bound's own enumeration order — satisfying
// spec.md §4.4's "index ordering must match enumeration order" without
// every concrete grid re-deriving it. Since grids are immutable after
// construction (spec.md §5), computing this once at construction time is
// always safe.
type boundIndex struct {
	cells []cell.Cell
	pos   map[cell.Cell]int64
}

func newBoundIndex(b bound.Bound) *boundIndex {
	if b == nil {
		return nil
	}
	cells := b.Enumerate()
	pos := make(map[cell.Cell]int64, len(cells))
	for i, c := range cells {
		pos[c] = int64(i)
	}
	return &boundIndex{cells: cells, pos: pos}
}

func (bi *boundIndex) count() int64 {
	if bi == nil {
		return 0
	}
	return int64(len(bi.cells))
}

func (bi *boundIndex) index(c cell.Cell) (int64, bool) {
	if bi == nil {
		return 0, false
	}
	i, ok := bi.pos[c]
	return i, ok
}

func (bi *boundIndex) cellByIndex(i int64) (cell.Cell, bool) {
	if bi == nil || i < 0 || i >= int64(len(bi.cells)) {
		return cell.Cell{}, false
	}
	return bi.cells[i], true
}
