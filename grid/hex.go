package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/geom"
)

var hexAxialOffset = [6]struct{ dq, dr int32 }{
	celltype.HexE:  {1, 0},
	celltype.HexNE: {1, -1},
	celltype.HexNW: {0, -1},
	celltype.HexW:  {-1, 0},
	celltype.HexSW: {-1, 1},
	celltype.HexSE: {0, 1},
}

const sqrt3 = 1.7320508075688772

// HexOrientation distinguishes the two hex tilings of spec.md §4.4.2.
type HexOrientation int

const (
	// HexFlatTop orients cells with a flat edge at the top.
	HexFlatTop HexOrientation = iota
	// HexPointyTop orients cells with a vertex at the top.
	HexPointyTop
)

// HexGrid implements spec.md §4.4.2. Cells are stored as axial (q, r, 0).
type HexGrid struct {
	cellSize    float32
	orientation HexOrientation
	b           bound.Bound
	idx         *boundIndex
}

// NewHexGrid returns an unbounded hex grid with the given cell size and
// orientation.
func NewHexGrid(cellSize float32, orientation HexOrientation) HexGrid {
	return HexGrid{cellSize: cellSize, orientation: orientation}
}

func (g HexGrid) cellType() celltype.CellType {
	if g.orientation == HexFlatTop {
		return celltype.FlatHex()
	}
	return celltype.PointyHex()
}

func (g HexGrid) CellSize() float32 { return g.cellSize }
func (g HexGrid) Describe() string {
	orient := "FlatTop"
	if g.orientation == HexPointyTop {
		orient = "PointyTop"
	}
	return describeGrid("Hex"+orient, g.cellSize, g.b != nil)
}
func (g HexGrid) String() string { return g.Describe() }

func (g HexGrid) IsPlanar() bool { return true }
func (g HexGrid) Is3D() bool     { return false }
func (g HexGrid) IsFinite() bool { return g.b != nil }

func (g HexGrid) CellType(c cell.Cell) (celltype.CellType, bool) {
	if c.Z != 0 {
		return nil, false
	}
	return g.cellType(), true
}

func (g HexGrid) IsCellInGrid(c cell.Cell) bool {
	if c.Z != 0 {
		return false
	}
	if g.b == nil {
		return true
	}
	return g.b.Contains(c)
}

func (g HexGrid) TryMove(c cell.Cell, d cell.Direction) (Step, bool) {
	if !g.IsCellInGrid(c) || d < 0 || int(d) >= 6 {
		return Step{}, false
	}
	off := hexAxialOffset[d]
	dest := cell.New(c.X+off.dq, c.Y+off.dr, 0)
	if !g.IsCellInGrid(dest) {
		return Step{}, false
	}
	inv, _ := g.cellType().InvertDir(d)
	return Step{
		Src: c, Dest: dest, Dir: d, InverseDir: inv,
		Connection: cell.IdentityConnection,
		Length:     distance(g.CellCenter(c), g.CellCenter(dest)),
	}, true
}

func (g HexGrid) CellDirs(c cell.Cell) []cell.Direction {
	var out []cell.Direction
	for d := cell.Direction(0); d < 6; d++ {
		if _, ok := g.TryMove(c, d); ok {
			out = append(out, d)
		}
	}
	return out
}

func (g HexGrid) CellCorners(c cell.Cell) []cell.Corner {
	if !g.IsCellInGrid(c) {
		return nil
	}
	return []cell.Corner{0, 1, 2, 3, 4, 5}
}

// CellCenter follows the standard axial-to-world projection (verified
// against spec.md §8 scenario 5: pointy-top, size=2.0, cell (-1,3) maps to
// (√3, 9.0, 0.0)), rather than the §4.4.2 cube-coordinate gloss, which does
// not reproduce that scenario under either orientation assignment.
func (g HexGrid) CellCenter(c cell.Cell) geom.Vec3 {
	q, r := float64(c.X), float64(c.Y)
	s := float64(g.cellSize)
	if g.orientation == HexPointyTop {
		return geom.Vec3{
			X: float32(s * sqrt3 * (q + r/2)),
			Y: float32(1.5 * s * r),
		}
	}
	return geom.Vec3{
		X: float32(1.5 * s * q),
		Y: float32(s * sqrt3 * (q/2 + r)),
	}
}

func (g HexGrid) CellCornerPos(c cell.Cell, k cell.Corner) (geom.Vec3, error) {
	pos, err := g.cellType().CornerPosition(k)
	if err != nil {
		return geom.Vec3{}, err
	}
	return g.CellCenter(c).Add(pos.Scale(g.cellSize)), nil
}

func (g HexGrid) CellAabb(c cell.Cell) geom.Aabb {
	pts := make([]geom.Vec3, 6)
	for k := cell.Corner(0); k < 6; k++ {
		pts[k], _ = g.CellCornerPos(c, k)
	}
	return geom.AabbFromPoints(pts)
}

func (g HexGrid) Polygon(c cell.Cell) ([]geom.Vec3, error) {
	if !g.IsCellInGrid(c) {
		return nil, ErrCellNotInGrid
	}
	out := make([]geom.Vec3, 6)
	for k := cell.Corner(0); k < 6; k++ {
		out[k], _ = g.CellCornerPos(c, k)
	}
	return out, nil
}

// fractionalAxial inverts CellCenter, returning the real-valued (q, r) that
// would produce world position pos.
func (g HexGrid) fractionalAxial(pos geom.Vec3) (q, r float64) {
	s := float64(g.cellSize)
	x, y := float64(pos.X), float64(pos.Y)
	if g.orientation == HexPointyTop {
		r = y / (1.5 * s)
		q = x/(s*sqrt3) - r/2
		return q, r
	}
	q = x / (1.5 * s)
	r = y/(s*sqrt3) - q/2
	return q, r
}

// hexRound rounds fractional cube coordinates to the nearest valid integer
// cube cell (x+y+z=0), per spec.md §4.4.2: round each independently, then
// re-derive the component with the largest rounding error.
func hexRound(x, y, z float64) (rx, ry, rz int32) {
	rxf := math.Round(x)
	ryf := math.Round(y)
	rzf := math.Round(z)

	dx := math.Abs(rxf - x)
	dy := math.Abs(ryf - y)
	dz := math.Abs(rzf - z)

	switch {
	case dx > dy && dx > dz:
		rxf = -ryf - rzf
	case dy > dz:
		ryf = -rxf - rzf
	default:
		rzf = -rxf - ryf
	}
	return int32(rxf), int32(ryf), int32(rzf)
}

func (g HexGrid) FindCell(pos geom.Vec3) (cell.Cell, bool) {
	qf, rf := g.fractionalAxial(pos)
	x, _, z := hexRound(qf, -qf-rf, rf)
	c := cell.New(x, z, 0)
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

func (g HexGrid) CellsInAABB(min, max geom.Vec3) []cell.Cell {
	// Conservative query per spec.md §4.4.2: compute the fractional axial
	// range over all four corners of the AABB's XY footprint (the axial axes
	// are skewed against world X/Y, so two opposite corners do not bound it),
	// expand by ±2, enumerate, then filter by true AABB intersection. The
	// hex grid's true cell shape can extend beyond a naive bounding
	// rectangle of rounded cells, so the ±2 pad keeps this a safe superset;
	// spec.md §9 explicitly allows any correct superset algorithm here.
	minQf, minRf := math.Inf(1), math.Inf(1)
	maxQf, maxRf := math.Inf(-1), math.Inf(-1)
	for _, p := range [4]geom.Vec3{{X: min.X, Y: min.Y}, {X: max.X, Y: min.Y}, {X: min.X, Y: max.Y}, {X: max.X, Y: max.Y}} {
		q, r := g.fractionalAxial(p)
		minQf, maxQf = minf64(minQf, q), maxf64(maxQf, q)
		minRf, maxRf = minf64(minRf, r), maxf64(maxRf, r)
	}
	minQ := int32(math.Floor(minQf)) - 2
	maxQ := int32(math.Ceil(maxQf)) + 2
	minR := int32(math.Floor(minRf)) - 2
	maxR := int32(math.Ceil(maxRf)) + 2

	query := geom.Aabb{Min: min, Max: max}
	var out []cell.Cell
	for r := minR; r <= maxR; r++ {
		for q := minQ; q <= maxQ; q++ {
			c := cell.New(q, r, 0)
			if !g.IsCellInGrid(c) {
				continue
			}
			if g.CellAabb(c).Intersects(query) {
				out = append(out, c)
			}
		}
	}
	return out
}

func minf64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (g HexGrid) IndexCount() (int64, error) {
	if g.b == nil {
		return 0, ErrUnbounded
	}
	return g.idx.count(), nil
}

func (g HexGrid) Index(c cell.Cell) (int64, bool) {
	if g.b == nil {
		return 0, false
	}
	return g.idx.index(c)
}

func (g HexGrid) CellByIndex(i int64) (cell.Cell, error) {
	if g.b == nil {
		return cell.Cell{}, ErrUnbounded
	}
	c, ok := g.idx.cellByIndex(i)
	if !ok {
		return cell.Cell{}, ErrIndexOutOfRange
	}
	return c, nil
}

func (g HexGrid) Bound() (bound.Bound, bool) {
	if g.b == nil {
		return nil, false
	}
	return g.b, true
}

func (g HexGrid) BoundBy(b bound.Bound) Grid {
	return HexGrid{cellSize: g.cellSize, orientation: g.orientation, b: b, idx: newBoundIndex(b)}
}

func (g HexGrid) Unbounded() Grid {
	return HexGrid{cellSize: g.cellSize, orientation: g.orientation}
}
