package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/geom"
)

// TriangleOrientation distinguishes the two triangle tilings of spec.md
// §4.4.3.
type TriangleOrientation int

const (
	// TriangleFlatTopped gives every cell a horizontal edge: up-pointing
	// cells have a flat bottom edge, down-pointing cells a flat top edge.
	TriangleFlatTopped TriangleOrientation = iota
	// TriangleFlatSides orients up-pointing cells with a flat left/right
	// edge (pointing right).
	TriangleFlatSides
)

// TriangleGrid implements spec.md §4.4.3. Cells are (x, y, z) with
// x+y+z ∈ {1, 2}; a cell size s is defined so that edge-adjacent cells'
// centers are s/√3 apart — the centroid spacing of an equilateral-triangle
// tiling of edge length s — and corners sit at circumradius s/√3 from the
// center (see CellCornerPos's use of cornerScale).
type TriangleGrid struct {
	cellSize    float32
	orientation TriangleOrientation
	b           bound.Bound
	idx         *boundIndex
}

// NewTriangleGrid returns an unbounded triangle grid with the given cell
// size and orientation.
func NewTriangleGrid(cellSize float32, orientation TriangleOrientation) TriangleGrid {
	return TriangleGrid{cellSize: cellSize, orientation: orientation}
}

// parity returns 2 ("up/right") or 1 ("down/left") for c, or 0 if c is not
// a valid triangle cell.
func parity(c cell.Cell) int32 {
	sum := c.X + c.Y + c.Z
	if sum == 1 || sum == 2 {
		return sum
	}
	return 0
}

func (g TriangleGrid) cellTypeFor(c cell.Cell) (celltype.CellType, bool) {
	switch parity(c) {
	case 2:
		if g.orientation == TriangleFlatTopped {
			return celltype.FTTriangleUp(), true
		}
		return celltype.FSTriangleUp(), true
	case 1:
		if g.orientation == TriangleFlatTopped {
			return celltype.FTTriangleDown(), true
		}
		return celltype.FSTriangleDown(), true
	default:
		return nil, false
	}
}

func (g TriangleGrid) CellSize() float32 { return g.cellSize }
func (g TriangleGrid) Describe() string {
	orient := "FlatTopped"
	if g.orientation == TriangleFlatSides {
		orient = "FlatSides"
	}
	return describeGrid("Triangle"+orient, g.cellSize, g.b != nil)
}
func (g TriangleGrid) String() string { return g.Describe() }

func (g TriangleGrid) IsPlanar() bool { return true }
func (g TriangleGrid) Is3D() bool     { return false }
func (g TriangleGrid) IsFinite() bool { return g.b != nil }

func (g TriangleGrid) CellType(c cell.Cell) (celltype.CellType, bool) {
	return g.cellTypeFor(c)
}

func (g TriangleGrid) IsCellInGrid(c cell.Cell) bool {
	if parity(c) == 0 {
		return false
	}
	if g.b == nil {
		return true
	}
	return g.b.Contains(c)
}

func (g TriangleGrid) liveDirs(c cell.Cell) [3]cell.Direction {
	return celltype.LiveDirs(parity(c))
}

func (g TriangleGrid) TryMove(c cell.Cell, d cell.Direction) (Step, bool) {
	if !g.IsCellInGrid(c) {
		return Step{}, false
	}
	live := false
	for _, ld := range g.liveDirs(c) {
		if ld == d {
			live = true
			break
		}
	}
	if !live {
		return Step{}, false
	}
	move := celltype.TriangleMoves[d]
	dest := c
	switch move.Axis {
	case 0:
		dest.X += move.Delta
	case 1:
		dest.Y += move.Delta
	case 2:
		dest.Z += move.Delta
	}
	if !g.IsCellInGrid(dest) {
		return Step{}, false
	}
	ct, _ := g.cellTypeFor(c)
	inv, _ := ct.InvertDir(d)
	return Step{
		Src: c, Dest: dest, Dir: d, InverseDir: inv,
		Connection: cell.IdentityConnection,
		Length:     distance(g.CellCenter(c), g.CellCenter(dest)),
	}, true
}

func (g TriangleGrid) CellDirs(c cell.Cell) []cell.Direction {
	var out []cell.Direction
	for _, d := range g.liveDirs(c) {
		if _, ok := g.TryMove(c, d); ok {
			out = append(out, d)
		}
	}
	return out
}

func (g TriangleGrid) CellCorners(c cell.Cell) []cell.Corner {
	if !g.IsCellInGrid(c) {
		return nil
	}
	return []cell.Corner{0, 1, 2}
}

func (g TriangleGrid) CellCenter(c cell.Cell) geom.Vec3 {
	s := float64(g.cellSize)
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	return geom.Vec3{
		X: float32(s / 2 * (x - y)),
		Y: float32(s * sqrt3 / 6 * (2*z - x - y)),
	}
}

// cornerScale is the circumradius of an equilateral triangle of edge length
// s: s/√3.
func (g TriangleGrid) cornerScale() float32 {
	return g.cellSize / float32(sqrt3)
}

func (g TriangleGrid) CellCornerPos(c cell.Cell, k cell.Corner) (geom.Vec3, error) {
	ct, ok := g.cellTypeFor(c)
	if !ok {
		return geom.Vec3{}, ErrCellNotInGrid
	}
	pos, err := ct.CornerPosition(k)
	if err != nil {
		return geom.Vec3{}, err
	}
	return g.CellCenter(c).Add(pos.Scale(g.cornerScale())), nil
}

func (g TriangleGrid) CellAabb(c cell.Cell) geom.Aabb {
	pts := make([]geom.Vec3, 3)
	for k := cell.Corner(0); k < 3; k++ {
		pts[k], _ = g.CellCornerPos(c, k)
	}
	return geom.AabbFromPoints(pts)
}

func (g TriangleGrid) Polygon(c cell.Cell) ([]geom.Vec3, error) {
	if !g.IsCellInGrid(c) {
		return nil, ErrCellNotInGrid
	}
	out := make([]geom.Vec3, 3)
	for k := cell.Corner(0); k < 3; k++ {
		out[k], _ = g.CellCornerPos(c, k)
	}
	return out, nil
}

// triangleRound rounds continuous (x, y, z) to the nearest integer triple
// whose sum is 1 or 2, using the same largest-error-component adjustment
// as hexRound but targeting the nearer of the two valid sums instead of a
// fixed 0. The target can't be read off x+y+z directly: fractionalXYZ
// defines y as (1.5-z)-x, so that sum is identically 1.5 for every input
// and carries no parity information. The per-axis roundings rx+ry+rz don't
// share that degeneracy, so the target is derived from their sum instead.
func triangleRound(x, y, z float64) cell.Cell {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	target := rx + ry + rz
	if target < 1 {
		target = 1
	} else if target > 2 {
		target = 2
	}

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	diff := target - (rx + ry + rz)
	switch {
	case dx >= dy && dx >= dz:
		rx += diff
	case dy >= dz:
		ry += diff
	default:
		rz += diff
	}
	return cell.New(int32(rx), int32(ry), int32(rz))
}

func (g TriangleGrid) FindCell(pos geom.Vec3) (cell.Cell, bool) {
	s := float64(g.cellSize)
	u := 2 * float64(pos.X) / s
	w := 6 * float64(pos.Y) / (s * sqrt3)

	z := (w + 1.5) / 3
	x := (u + (1.5 - z)) / 2
	y := (1.5 - z) - x

	c := triangleRound(x, y, z)
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

// fractionalXYZ inverts CellCenter without rounding, the same linear system
// FindCell solves, used by CellsInAABB to bracket a coordinate range.
func (g TriangleGrid) fractionalXYZ(pos geom.Vec3) (x, y, z float64) {
	s := float64(g.cellSize)
	u := 2 * float64(pos.X) / s
	w := 6 * float64(pos.Y) / (s * sqrt3)

	z = (w + 1.5) / 3
	x = (u + (1.5 - z)) / 2
	y = (1.5 - z) - x
	return x, y, z
}

func (g TriangleGrid) CellsInAABB(min, max geom.Vec3) []cell.Cell {
	// Bracket the continuous (x, y, z) range over all four AABB corners
	// (the coordinate axes are skewed relative to world x/y, so the two
	// opposite corners alone don't bound the range), then expand by ±1 and
	// enumerate every integer cell in range, filtering by true AABB
	// intersection. Per spec.md §9, any correct superset algorithm is
	// acceptable here.
	corners := [4]geom.Vec3{
		{X: min.X, Y: min.Y}, {X: max.X, Y: min.Y},
		{X: min.X, Y: max.Y}, {X: max.X, Y: max.Y},
	}
	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y, z := g.fractionalXYZ(p)
		minX, maxX = minf64(minX, x), maxf64(maxX, x)
		minY, maxY = minf64(minY, y), maxf64(maxY, y)
		minZ, maxZ = minf64(minZ, z), maxf64(maxZ, z)
	}

	x0, x1 := int32(math.Floor(minX))-1, int32(math.Ceil(maxX))+1
	y0, y1 := int32(math.Floor(minY))-1, int32(math.Ceil(maxY))+1
	z0, z1 := int32(math.Floor(minZ))-1, int32(math.Ceil(maxZ))+1

	query := geom.Aabb{Min: min, Max: max}
	var out []cell.Cell
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				c := cell.New(x, y, z)
				if !g.IsCellInGrid(c) {
					continue
				}
				if g.CellAabb(c).Intersects(query) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func (g TriangleGrid) IndexCount() (int64, error) {
	if g.b == nil {
		return 0, ErrUnbounded
	}
	return g.idx.count(), nil
}

func (g TriangleGrid) Index(c cell.Cell) (int64, bool) {
	if g.b == nil {
		return 0, false
	}
	return g.idx.index(c)
}

func (g TriangleGrid) CellByIndex(i int64) (cell.Cell, error) {
	if g.b == nil {
		return cell.Cell{}, ErrUnbounded
	}
	c, ok := g.idx.cellByIndex(i)
	if !ok {
		return cell.Cell{}, ErrIndexOutOfRange
	}
	return c, nil
}

func (g TriangleGrid) Bound() (bound.Bound, bool) {
	if g.b == nil {
		return nil, false
	}
	return g.b, true
}

func (g TriangleGrid) BoundBy(b bound.Bound) Grid {
	return TriangleGrid{cellSize: g.cellSize, orientation: g.orientation, b: b, idx: newBoundIndex(b)}
}

func (g TriangleGrid) Unbounded() Grid {
	return TriangleGrid{cellSize: g.cellSize, orientation: g.orientation}
}
