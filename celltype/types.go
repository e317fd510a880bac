package celltype

import (
	"errors"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/geom"
	"github.com/katalvlaran/sylves/rotation"
)

// ErrInvalidDirection is returned when a Direction falls outside
// [0, DirCount) for the receiving CellType.
var ErrInvalidDirection = errors.New("celltype: direction out of range")

// ErrInvalidCorner is returned when a Corner falls outside [0, CornerCount)
// for the receiving CellType.
var ErrInvalidCorner = errors.New("celltype: corner out of range")

// CellType is the per-topology direction/corner/rotation algebra of
// spec.md §4.2. Every method is pure; a CellType carries no per-cell state,
// since a given cell's set of *live* directions (the subset that actually
// has a neighbor) is a property of the Grid, not of the CellType — see
// spec.md's Live-direction-coverage invariant in §8.
type CellType interface {
	// Name is a short human-readable discriminator ("Square", "FlatHex",
	// "PointyHex", "FTTriangleUp", "FTTriangleDown", "FSTriangleUp",
	// "FSTriangleDown", "Cube"), used in error messages and tests.
	Name() string

	// Dimension returns 2 for planar cell types, 3 for volumetric ones.
	Dimension() int

	// DirCount returns the size of the addressable direction space. Not
	// every direction in [0, DirCount) need be live for every cell of this
	// type — see Grid.CellDirs.
	DirCount() int

	// CornerCount returns the number of corners of a cell of this type.
	CornerCount() int

	// CornerPosition returns the position of corner k in a canonical unit
	// frame centered at the cell's origin. Returns ErrInvalidCorner if k is
	// out of range.
	CornerPosition(k cell.Corner) (geom.Vec3, error)

	// InvertDir returns the direction that, followed from the neighboring
	// cell reached via d, leads back to the original cell. ok is false if d
	// is out of range or (triangle only) never live for any cell of this
	// orientation.
	InvertDir(d cell.Direction) (inv cell.Direction, ok bool)

	// GroupOrder returns N, the rotation-step modulus used by Compose,
	// Invert, RotateDir and RotateCorner (4 for square, 6 for hex and
	// triangle, 4 for cube's rotation-only direction model).
	GroupOrder() uint8

	// RotateDir applies r to direction d.
	RotateDir(d cell.Direction, r rotation.Rotation) cell.Direction

	// RotateCorner applies r to corner k.
	RotateCorner(k cell.Corner, r rotation.Rotation) cell.Corner

	// Compose returns the rotation equivalent to applying b first, then a.
	Compose(a, b rotation.Rotation) rotation.Rotation

	// Invert returns the inverse of r.
	Invert(r rotation.Rotation) rotation.Rotation

	// Connection realizes the minimal rotation/reflection mapping fromDir
	// to toDir within the group, per spec.md §4.2.
	Connection(fromDir, toDir cell.Direction) cell.Connection
}

// genericRotationOps implements the four rotation-group methods shared by
// every CellType in terms of its GroupOrder and DirCount/CornerCount, so
// concrete types only need to supply those two numbers plus Name,
// Dimension, CornerPosition and InvertDir.
type genericRotationOps struct {
	n         uint8
	dirCount  int
	cornCount int
}

func (g genericRotationOps) GroupOrder() uint8 { return g.n }

func (g genericRotationOps) RotateDir(d cell.Direction, r rotation.Rotation) cell.Direction {
	return cell.Direction(r.RotateDir(int(d), g.dirCount))
}

func (g genericRotationOps) RotateCorner(k cell.Corner, r rotation.Rotation) cell.Corner {
	return cell.Corner(r.RotateDir(int(k), g.cornCount))
}

func (g genericRotationOps) Compose(a, b rotation.Rotation) rotation.Rotation {
	return a.Compose(b, g.n)
}

func (g genericRotationOps) Invert(r rotation.Rotation) rotation.Rotation {
	return r.Invert(g.n)
}

// connectionBetween finds the rotation r (over the group of order n, trying
// pure rotations then reflections) such that rotating fromDir by r yields
// toDir, matching spec.md §4.2's "minimal rotation/reflection that maps
// from_dir to to_dir" contract. It is shared by every non-cube CellType;
// Cube overrides Connection since its direction model is rotation-only.
func connectionBetween(n uint8, dirCount int, fromDir, toDir cell.Direction) cell.Connection {
	for steps := uint8(0); steps < n; steps++ {
		r := rotation.Rotate(steps, n)
		if int(r.RotateDir(int(fromDir), dirCount)) == int(toDir) {
			return cell.Connection{Rotation: r}
		}
	}
	for steps := uint8(0); steps < n; steps++ {
		r := rotation.Reflect(steps, n)
		if int(r.RotateDir(int(fromDir), dirCount)) == int(toDir) {
			return cell.Connection{Rotation: r}
		}
	}
	return cell.Connection{}
}
