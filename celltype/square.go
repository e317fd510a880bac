package celltype

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
)

// Square direction indices, per spec.md §3.
const (
	SquareRight cell.Direction = 0
	SquareUp    cell.Direction = 1
	SquareLeft  cell.Direction = 2
	SquareDown  cell.Direction = 3
)

// Square corner indices, per spec.md §4.4.1.
const (
	SquareBR cell.Corner = 0
	SquareTR cell.Corner = 1
	SquareTL cell.Corner = 2
	SquareBL cell.Corner = 3
)

var squareCorners = [4]geom.Vec3{
	{X: 0.5, Y: -0.5},
	{X: 0.5, Y: 0.5},
	{X: -0.5, Y: 0.5},
	{X: -0.5, Y: -0.5},
}

// squareCellType is the cyclic-order-4 cell type shared by every square
// grid cell.
type squareCellType struct{ genericRotationOps }

// Square returns the square CellType singleton.
func Square() CellType {
	return squareCellType{genericRotationOps{n: 4, dirCount: 4, cornCount: 4}}
}

func (squareCellType) Name() string  { return "Square" }
func (squareCellType) Dimension() int { return 2 }
func (squareCellType) DirCount() int  { return 4 }
func (squareCellType) CornerCount() int { return 4 }

func (squareCellType) CornerPosition(k cell.Corner) (geom.Vec3, error) {
	if k < 0 || int(k) >= 4 {
		return geom.Vec3{}, ErrInvalidCorner
	}
	return squareCorners[k], nil
}

func (squareCellType) InvertDir(d cell.Direction) (cell.Direction, bool) {
	if d < 0 || int(d) >= 4 {
		return 0, false
	}
	return (d + 2) % 4, true
}

func (s squareCellType) Connection(fromDir, toDir cell.Direction) cell.Connection {
	return connectionBetween(4, 4, fromDir, toDir)
}
