// Package cell defines Cell, Direction, Corner and Connection — the small
// value types every grid topology shares, per spec.md §3.
//
// A Cell is an ordered triple of signed integers whose meaning is entirely
// topology-dependent: (x, y, 0) for square, (q, r, 0) axial for hex,
// (x, y, z) with x+y+z ∈ {1,2} for triangle, and so on. Direction and
// Corner are small non-negative integers local to a cell's CellType.
package cell

import "github.com/katalvlaran/sylves/rotation"

// Cell is an ordered triple of signed integers identifying a grid cell.
// Equality and hashing are component-wise; Cell is a valid map key as-is.
type Cell struct {
	X, Y, Z int32
}

// New constructs a Cell from three coordinates.
func New(x, y, z int32) Cell { return Cell{X: x, Y: y, Z: z} }

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }

// Sub returns the component-wise difference c - o.
func (c Cell) Sub(o Cell) Cell { return Cell{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

// Direction is a small non-negative integer local to a cell's CellType.
type Direction int

// Corner is a small non-negative integer local to a cell's CellType.
type Corner int

// Connection describes how local frames relate across a move: a rotation
// plus an independent mirror flag. For every purely translational grid in
// this package (square, cube, and their prisms), every Connection actually
// produced is the identity.
type Connection struct {
	Rotation rotation.Rotation
	Mirror   bool
}

// IdentityConnection is the connection used by every translational grid.
var IdentityConnection = Connection{}

// Invert returns the connection that undoes c, within a group of order n.
func (c Connection) Invert(n uint8) Connection {
	return Connection{Rotation: c.Rotation.Invert(n), Mirror: c.Mirror}
}
