package celltype

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
)

// Hex direction indices, per spec.md §3.
const (
	HexE  cell.Direction = 0
	HexNE cell.Direction = 1
	HexNW cell.Direction = 2
	HexW  cell.Direction = 3
	HexSW cell.Direction = 4
	HexSE cell.Direction = 5
)

// hexCellType implements the dihedral-order-12 group shared by flat- and
// pointy-topped hex grids; only the corner-angle offset differs between
// the two orientations.
type hexCellType struct {
	genericRotationOps
	name         string
	cornerOffset float64 // radians added to k*60deg when placing corner k
}

// FlatHex returns the CellType singleton for flat-topped hex grids.
func FlatHex() CellType {
	return hexCellType{genericRotationOps{n: 6, dirCount: 6, cornCount: 6}, "FlatHex", 0}
}

// PointyHex returns the CellType singleton for pointy-topped hex grids.
func PointyHex() CellType {
	return hexCellType{genericRotationOps{n: 6, dirCount: 6, cornCount: 6}, "PointyHex", math.Pi / 6}
}

func (h hexCellType) Name() string    { return h.name }
func (hexCellType) Dimension() int    { return 2 }
func (hexCellType) DirCount() int     { return 6 }
func (hexCellType) CornerCount() int  { return 6 }

func (h hexCellType) CornerPosition(k cell.Corner) (geom.Vec3, error) {
	if k < 0 || int(k) >= 6 {
		return geom.Vec3{}, ErrInvalidCorner
	}
	theta := float64(k)*math.Pi/3 + h.cornerOffset
	return geom.Vec3{X: float32(math.Cos(theta)), Y: float32(math.Sin(theta))}, nil
}

// InvertDir returns (d+3) mod 6, per spec.md §4.4.2.
func (hexCellType) InvertDir(d cell.Direction) (cell.Direction, bool) {
	if d < 0 || int(d) >= 6 {
		return 0, false
	}
	return (d + 3) % 6, true
}

func (h hexCellType) Connection(fromDir, toDir cell.Direction) cell.Connection {
	return connectionBetween(6, 6, fromDir, toDir)
}
