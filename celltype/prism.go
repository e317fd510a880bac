package celltype

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
	"github.com/katalvlaran/sylves/rotation"
)

// prismCellType extends a 2D base CellType with a top/bottom pair of
// directions and doubles its corner ring, per spec.md §4.4.5. Rotation
// acts on the base dirs/corners exactly as the base type does and leaves
// the top/bottom axis fixed, matching every prism grid's Z-axis-only
// rotation model.
type prismCellType struct {
	base       CellType
	zHeight    float32
	dirCount   int
	cornCount  int
	zPlus      cell.Direction
	zMinus     cell.Direction
}

// Prism wraps a 2D base CellType into the corresponding prism CellType:
// directions are the base's directions followed by +Z, -Z; corners are the
// base's corners (bottom ring) followed by a second copy (top ring) at
// world-z zHeight above the bottom.
func Prism(base CellType, zHeight float32) CellType {
	dc := base.DirCount()
	return prismCellType{
		base:      base,
		zHeight:   zHeight,
		dirCount:  dc + 2,
		cornCount: base.CornerCount() * 2,
		zPlus:     cell.Direction(dc),
		zMinus:    cell.Direction(dc + 1),
	}
}

func (p prismCellType) Name() string      { return p.base.Name() + "Prism" }
func (p prismCellType) Dimension() int    { return 3 }
func (p prismCellType) DirCount() int     { return p.dirCount }
func (p prismCellType) CornerCount() int  { return p.cornCount }
func (p prismCellType) GroupOrder() uint8 { return p.base.GroupOrder() }

func (p prismCellType) CornerPosition(k cell.Corner) (geom.Vec3, error) {
	baseCount := p.base.CornerCount()
	if k < 0 || int(k) >= p.cornCount {
		return geom.Vec3{}, ErrInvalidCorner
	}
	ring := int(k) / baseCount
	basePos, err := p.base.CornerPosition(cell.Corner(int(k) % baseCount))
	if err != nil {
		return geom.Vec3{}, err
	}
	basePos.Z = float32(ring) * p.zHeight
	return basePos, nil
}

func (p prismCellType) InvertDir(d cell.Direction) (cell.Direction, bool) {
	switch d {
	case p.zPlus:
		return p.zMinus, true
	case p.zMinus:
		return p.zPlus, true
	default:
		return p.base.InvertDir(d)
	}
}

func (p prismCellType) RotateDir(d cell.Direction, r rotation.Rotation) cell.Direction {
	if d == p.zPlus || d == p.zMinus {
		return d
	}
	return p.base.RotateDir(d, r)
}

func (p prismCellType) RotateCorner(k cell.Corner, r rotation.Rotation) cell.Corner {
	baseCount := p.base.CornerCount()
	ring := int(k) / baseCount
	rotated := p.base.RotateCorner(cell.Corner(int(k)%baseCount), r)
	return cell.Corner(ring*baseCount + int(rotated))
}

func (p prismCellType) Compose(a, b rotation.Rotation) rotation.Rotation { return p.base.Compose(a, b) }
func (p prismCellType) Invert(r rotation.Rotation) rotation.Rotation     { return p.base.Invert(r) }

func (p prismCellType) Connection(fromDir, toDir cell.Direction) cell.Connection {
	if fromDir == p.zPlus || fromDir == p.zMinus || toDir == p.zPlus || toDir == p.zMinus {
		return cell.IdentityConnection
	}
	return p.base.Connection(fromDir, toDir)
}
