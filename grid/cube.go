package grid

import (
	"math"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/celltype"
	"github.com/katalvlaran/sylves/geom"
)

var cubeDirOffset = [6]cell.Cell{
	celltype.CubePX: cell.New(1, 0, 0),
	celltype.CubeNX: cell.New(-1, 0, 0),
	celltype.CubePY: cell.New(0, 1, 0),
	celltype.CubeNY: cell.New(0, -1, 0),
	celltype.CubePZ: cell.New(0, 0, 1),
	celltype.CubeNZ: cell.New(0, 0, -1),
}

// CubeGrid implements spec.md §4.4.4: a trivial translational grid over
// (x, y, z).
type CubeGrid struct {
	cellSize float32
	b        bound.Bound
	idx      *boundIndex
}

// NewCubeGrid returns an unbounded cube grid with the given cell size.
func NewCubeGrid(cellSize float32) CubeGrid {
	return CubeGrid{cellSize: cellSize}
}

func (g CubeGrid) CellSize() float32 { return g.cellSize }
func (g CubeGrid) Describe() string  { return describeGrid("Cube", g.cellSize, g.b != nil) }
func (g CubeGrid) String() string    { return g.Describe() }

func (g CubeGrid) IsPlanar() bool { return false }
func (g CubeGrid) Is3D() bool     { return true }
func (g CubeGrid) IsFinite() bool { return g.b != nil }

func (g CubeGrid) CellType(c cell.Cell) (celltype.CellType, bool) {
	return celltype.Cube(), true
}

func (g CubeGrid) IsCellInGrid(c cell.Cell) bool {
	if g.b == nil {
		return true
	}
	return g.b.Contains(c)
}

func (g CubeGrid) TryMove(c cell.Cell, d cell.Direction) (Step, bool) {
	if !g.IsCellInGrid(c) || d < 0 || int(d) >= 6 {
		return Step{}, false
	}
	dest := c.Add(cubeDirOffset[d])
	if !g.IsCellInGrid(dest) {
		return Step{}, false
	}
	inv, _ := celltype.Cube().InvertDir(d)
	return Step{
		Src: c, Dest: dest, Dir: d, InverseDir: inv,
		Connection: cell.IdentityConnection,
		Length:     distance(g.CellCenter(c), g.CellCenter(dest)),
	}, true
}

func (g CubeGrid) CellDirs(c cell.Cell) []cell.Direction {
	var out []cell.Direction
	for d := cell.Direction(0); d < 6; d++ {
		if _, ok := g.TryMove(c, d); ok {
			out = append(out, d)
		}
	}
	return out
}

func (g CubeGrid) CellCorners(c cell.Cell) []cell.Corner {
	if !g.IsCellInGrid(c) {
		return nil
	}
	out := make([]cell.Corner, 8)
	for k := range out {
		out[k] = cell.Corner(k)
	}
	return out
}

func (g CubeGrid) CellCenter(c cell.Cell) geom.Vec3 {
	return geom.Vec3{
		X: (float32(c.X) + 0.5) * g.cellSize,
		Y: (float32(c.Y) + 0.5) * g.cellSize,
		Z: (float32(c.Z) + 0.5) * g.cellSize,
	}
}

func (g CubeGrid) CellCornerPos(c cell.Cell, k cell.Corner) (geom.Vec3, error) {
	pos, err := celltype.Cube().CornerPosition(k)
	if err != nil {
		return geom.Vec3{}, err
	}
	return g.CellCenter(c).Add(pos.Scale(g.cellSize)), nil
}

func (g CubeGrid) CellAabb(c cell.Cell) geom.Aabb {
	pts := make([]geom.Vec3, 8)
	for k := cell.Corner(0); k < 8; k++ {
		pts[k], _ = g.CellCornerPos(c, k)
	}
	return geom.AabbFromPoints(pts)
}

// Polygon is not supported: cube is a 3D grid.
func (g CubeGrid) Polygon(c cell.Cell) ([]geom.Vec3, error) {
	return nil, ErrNotSupported
}

func (g CubeGrid) FindCell(pos geom.Vec3) (cell.Cell, bool) {
	x := int32(math.Floor(float64(pos.X / g.cellSize)))
	y := int32(math.Floor(float64(pos.Y / g.cellSize)))
	z := int32(math.Floor(float64(pos.Z / g.cellSize)))
	c := cell.New(x, y, z)
	if !g.IsCellInGrid(c) {
		return cell.Cell{}, false
	}
	return c, true
}

func (g CubeGrid) CellsInAABB(min, max geom.Vec3) []cell.Cell {
	const eps = 1e-4
	minX := int32(math.Floor(float64(min.X / g.cellSize)))
	minY := int32(math.Floor(float64(min.Y / g.cellSize)))
	minZ := int32(math.Floor(float64(min.Z / g.cellSize)))
	maxX := int32(math.Floor(float64((max.X - eps) / g.cellSize)))
	maxY := int32(math.Floor(float64((max.Y - eps) / g.cellSize)))
	maxZ := int32(math.Floor(float64((max.Z - eps) / g.cellSize)))

	var out []cell.Cell
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				c := cell.New(x, y, z)
				if g.IsCellInGrid(c) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func (g CubeGrid) IndexCount() (int64, error) {
	if g.b == nil {
		return 0, ErrUnbounded
	}
	return g.idx.count(), nil
}

func (g CubeGrid) Index(c cell.Cell) (int64, bool) {
	if g.b == nil {
		return 0, false
	}
	return g.idx.index(c)
}

func (g CubeGrid) CellByIndex(i int64) (cell.Cell, error) {
	if g.b == nil {
		return cell.Cell{}, ErrUnbounded
	}
	c, ok := g.idx.cellByIndex(i)
	if !ok {
		return cell.Cell{}, ErrIndexOutOfRange
	}
	return c, nil
}

func (g CubeGrid) Bound() (bound.Bound, bool) {
	if g.b == nil {
		return nil, false
	}
	return g.b, true
}

func (g CubeGrid) BoundBy(b bound.Bound) Grid {
	return CubeGrid{cellSize: g.cellSize, b: b, idx: newBoundIndex(b)}
}

func (g CubeGrid) Unbounded() Grid {
	return CubeGrid{cellSize: g.cellSize}
}
