package celltype

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
	"github.com/katalvlaran/sylves/rotation"
)

// Cube direction indices, per spec.md §3.
const (
	CubePX cell.Direction = 0
	CubeNX cell.Direction = 1
	CubePY cell.Direction = 2
	CubeNY cell.Direction = 3
	CubePZ cell.Direction = 4
	CubeNZ cell.Direction = 5
)

var cubeHorizVec = map[cell.Direction][2]int{
	CubePX: {1, 0},
	CubePY: {0, 1},
	CubeNX: {-1, 0},
	CubeNY: {0, -1},
}

var cubeVecToHoriz = map[[2]int]cell.Direction{
	{1, 0}:  CubePX,
	{0, 1}:  CubePY,
	{-1, 0}: CubeNX,
	{0, -1}: CubeNY,
}

type cubeCellType struct{}

// Cube returns the cube CellType singleton. Per spec.md §4.2, cube uses "a
// minimal rotation-only model for directions": only the four rotations
// around the Z axis are modeled (matching the Z-axis rotation every prism
// grid needs), rather than the full 24-element cube rotation group.
// Reflections are recognized on Connection's return type (a mirror across
// the X axis before rotating) but cube's try_move is purely translational,
// so no caller of this package ever needs one enumerated beyond that.
func Cube() CellType { return cubeCellType{} }

func (cubeCellType) Name() string      { return "Cube" }
func (cubeCellType) Dimension() int    { return 3 }
func (cubeCellType) DirCount() int     { return 6 }
func (cubeCellType) CornerCount() int  { return 8 }
func (cubeCellType) GroupOrder() uint8 { return 4 }

func (cubeCellType) CornerPosition(k cell.Corner) (geom.Vec3, error) {
	if k < 0 || int(k) >= 8 {
		return geom.Vec3{}, ErrInvalidCorner
	}
	sign := func(bit int) float32 {
		if bit == 1 {
			return 0.5
		}
		return -0.5
	}
	x := int(k) & 1
	y := (int(k) >> 1) & 1
	z := (int(k) >> 2) & 1
	return geom.Vec3{X: sign(x), Y: sign(y), Z: sign(z)}, nil
}

// InvertDir pairs +X/-X, +Y/-Y, +Z/-Z via the low bit, matching the
// direction table above.
func (cubeCellType) InvertDir(d cell.Direction) (cell.Direction, bool) {
	if d < 0 || int(d) >= 6 {
		return 0, false
	}
	return d ^ 1, true
}

// rotate2D rotates the integer vector (x, y) — each component -1, 0 or 1 —
// by steps*90 degrees CCW around the origin, after an optional mirror
// across the X axis.
func rotate2D(x, y int, steps uint8, reflected bool) (int, int) {
	if reflected {
		y = -y
	}
	for i := uint8(0); i < steps%4; i++ {
		x, y = -y, x
	}
	return x, y
}

// RotateDir applies r to d: horizontal directions (+-X, +-Y) cycle around Z
// via rotate2D; +Z/-Z are fixed, matching the minimal rotation-only model.
func (cubeCellType) RotateDir(d cell.Direction, r rotation.Rotation) cell.Direction {
	vec, ok := cubeHorizVec[d]
	if !ok {
		return d // +Z / -Z unaffected
	}
	nx, ny := rotate2D(vec[0], vec[1], r.Steps, r.Reflected)
	return cubeVecToHoriz[[2]int{nx, ny}]
}

// RotateCorner applies r to corner k's (x,y) bits the same way RotateDir
// treats (+-X,+-Y); the z bit is unaffected.
func (cubeCellType) RotateCorner(k cell.Corner, r rotation.Rotation) cell.Corner {
	x := int(k)&1*2 - 1
	y := (int(k)>>1)&1*2 - 1
	z := (int(k) >> 2) & 1
	nx, ny := rotate2D(x, y, r.Steps, r.Reflected)
	bx := (nx + 1) / 2
	by := (ny + 1) / 2
	return cell.Corner(bx | by<<1 | z<<2)
}

func (cubeCellType) Compose(a, b rotation.Rotation) rotation.Rotation { return a.Compose(b, 4) }
func (cubeCellType) Invert(r rotation.Rotation) rotation.Rotation    { return r.Invert(4) }

func (c cubeCellType) Connection(fromDir, toDir cell.Direction) cell.Connection {
	for steps := uint8(0); steps < 4; steps++ {
		r := rotation.Rotate(steps, 4)
		if c.RotateDir(fromDir, r) == toDir {
			return cell.Connection{Rotation: r}
		}
	}
	for steps := uint8(0); steps < 4; steps++ {
		r := rotation.Reflect(steps, 4)
		if c.RotateDir(fromDir, r) == toDir {
			return cell.Connection{Rotation: r}
		}
	}
	return cell.Connection{}
}
