package bound

import "github.com/katalvlaran/sylves/cell"

// Cube is the cube-grid Bound variant: all cells (x, y, z) within inclusive
// per-axis extents.
type Cube struct {
	MinX, MinY, MinZ, MaxX, MaxY, MaxZ int32
}

// NewCube returns a Cube bound over the given inclusive extents.
func NewCube(minX, minY, minZ, maxX, maxY, maxZ int32) Cube {
	return Cube{MinX: minX, MinY: minY, MinZ: minZ, MaxX: maxX, MaxY: maxY, MaxZ: maxZ}
}

func (c Cube) empty() bool {
	return c.MinX > c.MaxX || c.MinY > c.MaxY || c.MinZ > c.MaxZ
}

func (c Cube) Contains(cl cell.Cell) bool {
	if c.empty() {
		return false
	}
	return cl.X >= c.MinX && cl.X <= c.MaxX &&
		cl.Y >= c.MinY && cl.Y <= c.MaxY &&
		cl.Z >= c.MinZ && cl.Z <= c.MaxZ
}

func (c Cube) Count() int64 {
	if c.empty() {
		return 0
	}
	return int64(c.MaxX-c.MinX+1) * int64(c.MaxY-c.MinY+1) * int64(c.MaxZ-c.MinZ+1)
}

func (c Cube) EnumerateInto(buf []cell.Cell) int {
	n := 0
	for z := c.MinZ; z <= c.MaxZ; z++ {
		for y := c.MinY; y <= c.MaxY; y++ {
			for x := c.MinX; x <= c.MaxX; x++ {
				if n >= len(buf) {
					return n
				}
				buf[n] = cell.New(x, y, z)
				n++
			}
		}
	}
	return n
}

func (c Cube) Enumerate() []cell.Cell {
	buf := make([]cell.Cell, c.Count())
	c.EnumerateInto(buf)
	return buf
}

func (c Cube) Intersect(other Bound) Bound {
	o, ok := other.(Cube)
	if !ok {
		return maskIntersect(c, other)
	}
	return Cube{
		MinX: maxInt32(c.MinX, o.MinX), MinY: maxInt32(c.MinY, o.MinY), MinZ: maxInt32(c.MinZ, o.MinZ),
		MaxX: minInt32(c.MaxX, o.MaxX), MaxY: minInt32(c.MaxY, o.MaxY), MaxZ: minInt32(c.MaxZ, o.MaxZ),
	}
}

func (c Cube) Union(other Bound) Bound {
	o, ok := other.(Cube)
	if !ok {
		return maskUnion(c, other)
	}
	if c.empty() {
		return o
	}
	if o.empty() {
		return c
	}
	return Cube{
		MinX: minInt32(c.MinX, o.MinX), MinY: minInt32(c.MinY, o.MinY), MinZ: minInt32(c.MinZ, o.MinZ),
		MaxX: maxInt32(c.MaxX, o.MaxX), MaxY: maxInt32(c.MaxY, o.MaxY), MaxZ: maxInt32(c.MaxZ, o.MaxZ),
	}
}
