package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/geom"
)

var squareDirOffset = [4]cell.Cell{
	celltype.SquareRight: cell.New(1, 0, 0),
	celltype.SquareUp:    cell.New(0, 1, 0),
	celltype.SquareLeft:  cell.New(-1, 0, 0),
	celltype.SquareDown:  cell.New(0, -1, 0),
}

// SquareGrid implements spec.md §4.4.1.
type SquareGrid struct {
	cellSize float32
	b        bound.Bound
	idx      *boundIndex
}

// NewSquareGrid returns an unbounded square grid with the given cell size.
func NewSquareGrid(cellSize float32) SquareGrid {
	return SquareGrid{cellSize: cellSize}
}

func (g SquareGrid) CellSize() float32 { return g.cellSize }
func (g SquareGrid) Describe() string  { return describeGrid("Square", g.cellSize, g.b != nil) }
func (g SquareGrid) String() string    { return g.Describe() }

func (g SquareGrid) IsPlanar() bool { return true }
func (g SquareGrid) Is3D() bool     { return false }
func (g SquareGrid) IsFinite() bool { return g.b != nil }

func (g SquareGrid) CellType(c cell.Cell) (celltype.CellType, bool) {
	if c.Z != 0 {
		return nil, false
	}
	return celltype.Square(), true
}

func (g SquareGrid) IsCellInGrid(c cell.Cell) bool {
	if c.Z != 0 {
		return false
	}
	if g.b == nil {
		return true
	}
	return g.b.Contains(c)
}

func (g SquareGrid) TryMove(c cell.Cell, d cell.Direction) (Step, bool) {
	if !g.IsCellInGrid(c) || d < 0 || int(d) >= 4 {
		return Step{}, false
	}
	dest := c.Add(squareDirOffset[d])
	if !g.IsCellInGrid(dest) {
		return Step{}, false
	}
	inv, _ := celltype.Square().InvertDir(d)
	return Step{
		Src: c, Dest: dest, Dir: d, InverseDir: inv,
		Connection: cell.IdentityConnection,
		Length:     distance(g.CellCenter(c), g.CellCenter(dest)),
	}, true
}

func (g SquareGrid) CellDirs(c cell.Cell) []cell.Direction {
	var out []cell.Direction
	for d := cell.Direction(0); d < 4; d++ {
		if _, ok := g.TryMove(c, d); ok {
			out = append(out, d)
		}
	}
	return out
}

func (g SquareGrid) CellCorners(c cell.Cell) []cell.Corner {
	if !g.IsCellInGrid(c) {
		return nil
	}
	return []cell.Corner{celltype.SquareBR, celltype.SquareTR, celltype.SquareTL, celltype.SquareBL}
}

func (g SquareGrid) CellCenter(c cell.Cell) geom.Vec3 {
	return geom.Vec3{
		X: (float32(c.X) + 0.5) * g.cellSize,
		Y: (float32(c.Y) + 0.5) * g.cellSize,
	}
}

func (g SquareGrid) CellCornerPos(c cell.Cell, k cell.Corner) (geom.Vec3, error) {
	pos, err := celltype.Square().CornerPosition(k)
	if err != nil {
		return geom.Vec3{}, err
	}
	return g.CellCenter(c).Add(pos.Scale(g.cellSize)), nil
}

func (g SquareGrid) CellAabb(c cell.Cell) geom.Aabb {
	corners := g.CellCorners(c)
	pts := make([]geom.Vec3, len(corners))
	for i, k := range corners {
		pts[i], _ = g.CellCornerPos(c, k)
	}
	return geom.AabbFromPoints(pts)
}

func (g SquareGrid) Polygon(c cell.Cell) ([]geom.Vec3, error) {
	corners := g.CellCorners(c)
	if corners == nil {
		return nil, ErrCellNotInGrid
	}
	out := make([]geom.Vec3, len(corners))
	for i, k := range corners {
		out[i], _ = g.CellCornerPos(c, k)
	}
	return out, nil
}

func (g SquareGrid) FindCell(pos geom.Vec3) (cell.Cell, bool) {
	x := int32(math.Floor(float64(pos.X / g.cellSize)))
	y := int32(math.Floor(float64(pos.Y / g.cellSize)))
	c := cell.New(x, y, 0)
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

func (g SquareGrid) CellsInAABB(min, max geom.Vec3) []cell.Cell {
	const eps = 1e-4
	minX := int32(math.Floor(float64(min.X / g.cellSize)))
	minY := int32(math.Floor(float64(min.Y / g.cellSize)))
	maxX := int32(math.Floor(float64((max.X - eps) / g.cellSize)))
	maxY := int32(math.Floor(float64((max.Y - eps) / g.cellSize)))

	var out []cell.Cell
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := cell.New(x, y, 0)
			if g.IsCellInGrid(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (g SquareGrid) IndexCount() (int64, error) {
	if g.b == nil {
		return 0, ErrUnbounded
	}
	return g.idx.count(), nil
}

func (g SquareGrid) Index(c cell.Cell) (int64, bool) {
	if g.b == nil {
		return 0, false
	}
	return g.idx.index(c)
}

func (g SquareGrid) CellByIndex(i int64) (cell.Cell, error) {
	if g.b == nil {
		return cell.Cell{}, ErrUnbounded
	}
	c, ok := g.idx.cellByIndex(i)
	if !ok {
		return cell.Cell{}, ErrIndexOutOfRange
	}
	return c, nil
}

func (g SquareGrid) Bound() (bound.Bound, bool) {
	if g.b == nil {
		return nil, false
	}
	return g.b, true
}

func (g SquareGrid) BoundBy(b bound.Bound) Grid {
	return SquareGrid{cellSize: g.cellSize, b: b, idx: newBoundIndex(b)}
}

func (g SquareGrid) Unbounded() Grid {
	return SquareGrid{cellSize: g.cellSize}
}
