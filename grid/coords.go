package grid

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
)

// AxialToCube converts hex axial coordinates (q, r) to cube coordinates
// (x, y, z) with x+y+z=0, per spec.md §4.4.6.
func AxialToCube(q, r int32) cell.Cell {
	return cell.New(q, -q-r, r)
}

// CubeToAxial converts hex cube coordinates back to axial (q, r), dropping
// y.
func CubeToAxial(c cell.Cell) (q, r int32) {
	return c.X, c.Z
}

// OffsetEvenQ converts axial (q, r) to "even-q" offset coordinates
// (col, row), per spec.md §4.4.6.
func OffsetEvenQ(q, r int32) (col, row int32) {
	col = q
	row = r + (q+(q&1))/2
	return col, row
}

// EvenQToAxial is the inverse of OffsetEvenQ.
func EvenQToAxial(col, row int32) (q, r int32) {
	q = col
	r = row - (col+(col&1))/2
	return q, r
}

// HexToTriangleChildren returns the six triangle cells a hex cell (in cube
// coordinates x, y, z) decomposes into, per spec.md §4.4.6: with
// a = x-y, b = y-z, c = z-x, the six children are the permutations of
// {a or a+1, b or b+1, c or c+1} whose coordinates sum to 1 or 2.
func HexToTriangleChildren(hexCube cell.Cell) [6]cell.Cell {
	a := hexCube.X - hexCube.Y
	b := hexCube.Y - hexCube.Z
	c := hexCube.Z - hexCube.X

	return [6]cell.Cell{
		cell.New(a, b, c+1),
		cell.New(a, b+1, c),
		cell.New(a+1, b, c),
		cell.New(a, b+1, c+1),
		cell.New(a+1, b+1, c),
		cell.New(a+1, b, c+1),
	}
}

// TriangleToHexParent returns the hex cube-coordinate parent of a triangle
// cell (x, y, z), per spec.md §4.4.6's rounded-division formula.
func TriangleToHexParent(tri cell.Cell) cell.Cell {
	x := roundDiv(tri.X-tri.Y, 3)
	y := roundDiv(tri.Y-tri.Z, 3)
	z := roundDiv(tri.Z-tri.X, 3)
	return cell.New(x, y, z)
}

// roundDiv divides a by b and rounds to the nearest integer, matching the
// "round()" used throughout spec.md §4.4.6.
func roundDiv(a, b int32) int32 {
	return int32(math.Round(float64(a) / float64(b)))
}
