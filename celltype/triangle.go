package celltype

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
)

// Triangle direction indices. The referenced "table in §9.1" of spec.md is
// not present in the distilled specification text this module was built
// from; the assignment below is chosen so that, combined with the parity
// rule of spec.md §4.4.3, it reproduces the one literal example the spec
// does give (§8 scenario 6: a down-pointing flat-topped triangle cell
// (0,0,1) has live directions {1,4,5}). Each direction changes exactly one
// of Cell{X,Y,Z} by ±1, per spec.md §4.4.3's try_move contract; directions
// are grouped so that the three "increasing" moves ({1,4,5}) are live from
// a parity-1 ("down"/"left") cell and the three "decreasing" moves
// ({0,2,3}) are live from a parity-2 ("up"/"right") cell. This resolves an
// open question from spec.md §9 rather than silently guessing — see
// DESIGN.md.
const (
	TriXDec cell.Direction = 0 // x -= 1 (live from an "up"/"right" cell)
	TriXInc cell.Direction = 1 // x += 1 (live from a "down"/"left" cell)
	TriYDec cell.Direction = 2 // y -= 1
	TriZDec cell.Direction = 3 // z -= 1
	TriYInc cell.Direction = 4 // y += 1
	TriZInc cell.Direction = 5 // z += 1
)

// TriangleAxisMove is one of the six elementary (axis, delta) moves a
// triangle direction performs on a Cell.
type TriangleAxisMove struct {
	Axis  int   // 0=X, 1=Y, 2=Z
	Delta int32 // +1 or -1
}

// TriangleMoves is indexed by direction and gives the axis/delta it applies.
var TriangleMoves = [6]TriangleAxisMove{
	{Axis: 0, Delta: -1},
	{Axis: 0, Delta: +1},
	{Axis: 1, Delta: -1},
	{Axis: 2, Delta: -1},
	{Axis: 1, Delta: +1},
	{Axis: 2, Delta: +1},
}

// TriangleUpDirs and TriangleDownDirs are the three live directions for a
// parity-2 ("up"/"right") and parity-1 ("down"/"left") cell respectively.
var (
	TriangleUpDirs   = [3]cell.Direction{TriXDec, TriYDec, TriZDec}
	TriangleDownDirs = [3]cell.Direction{TriXInc, TriYInc, TriZInc}
)

var triangleInvertTable = [6]cell.Direction{TriXInc, TriXDec, TriYInc, TriZInc, TriYDec, TriZDec}

// triangleCellType implements the order-6 rotation group (same encoding as
// hex, per spec.md §4.2) for one (orientation, parity) combination.
type triangleCellType struct {
	genericRotationOps
	name         string
	cornerOffset float64
	flipped      bool
}

// FTTriangleUp returns the flat-topped, up-pointing (parity 2) triangle
// CellType.
func FTTriangleUp() CellType { return newTriangleCellType("FTTriangleUp", math.Pi/2, false) }

// FTTriangleDown returns the flat-topped, down-pointing (parity 1) triangle
// CellType.
func FTTriangleDown() CellType { return newTriangleCellType("FTTriangleDown", math.Pi/2, true) }

// FSTriangleUp returns the flat-sided, right-pointing (parity 2) triangle
// CellType.
func FSTriangleUp() CellType {
	return newTriangleCellType("FSTriangleUp", math.Pi/2+math.Pi/6, false)
}

// FSTriangleDown returns the flat-sided, left-pointing (parity 1) triangle
// CellType.
func FSTriangleDown() CellType {
	return newTriangleCellType("FSTriangleDown", math.Pi/2+math.Pi/6, true)
}

func newTriangleCellType(name string, cornerOffset float64, flipped bool) CellType {
	return triangleCellType{
		genericRotationOps: genericRotationOps{n: 6, dirCount: 6, cornCount: 3},
		name:               name,
		cornerOffset:       cornerOffset,
		flipped:            flipped,
	}
}

func (t triangleCellType) Name() string   { return t.name }
func (triangleCellType) Dimension() int   { return 2 }
func (triangleCellType) DirCount() int    { return 6 }
func (triangleCellType) CornerCount() int { return 3 }

func (t triangleCellType) CornerPosition(k cell.Corner) (geom.Vec3, error) {
	if k < 0 || int(k) >= 3 {
		return geom.Vec3{}, ErrInvalidCorner
	}
	offset := t.cornerOffset
	if t.flipped {
		offset += math.Pi
	}
	theta := float64(k)*2*math.Pi/3 + offset
	return geom.Vec3{X: float32(math.Cos(theta)), Y: float32(math.Sin(theta))}, nil
}

// InvertDir is total over the six-direction space (see TriangleMoves):
// the Grid layer only ever calls it with a direction that is live for the
// specific cell in hand, which is the sense in which spec.md calls this
// operation "partial on triangle".
func (triangleCellType) InvertDir(d cell.Direction) (cell.Direction, bool) {
	if d < 0 || int(d) >= 6 {
		return 0, false
	}
	return triangleInvertTable[d], true
}

func (t triangleCellType) Connection(fromDir, toDir cell.Direction) cell.Connection {
	return connectionBetween(6, 6, fromDir, toDir)
}

// LiveDirs returns the three live directions for a cell with the given
// coordinate sum (1 or 2), per spec.md §4.4.3's parity rule.
func LiveDirs(sum int32) [3]cell.Direction {
	if sum == 2 {
		return TriangleUpDirs
	}
	return TriangleDownDirs
}
