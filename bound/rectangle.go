package bound

import "github.com/katalvlaran/sylves/cell"

// Rectangle is the square-grid Bound variant: all cells (x, y, 0) with
// MinX <= x <= MaxX and MinY <= y <= MaxY. Extents are inclusive; an empty
// range (MinX > MaxX or MinY > MaxY) is valid and has Count() == 0.
type Rectangle struct {
	MinX, MinY, MaxX, MaxY int32
}

// NewRectangle returns a Rectangle bound over the given inclusive extents.
func NewRectangle(minX, minY, maxX, maxY int32) Rectangle {
	return Rectangle{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (r Rectangle) empty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

func (r Rectangle) Contains(c cell.Cell) bool {
	if r.empty() {
		return false
	}
	return c.Z == 0 && c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

func (r Rectangle) Count() int64 {
	if r.empty() {
		return 0
	}
	return int64(r.MaxX-r.MinX+1) * int64(r.MaxY-r.MinY+1)
}

func (r Rectangle) EnumerateInto(buf []cell.Cell) int {
	n := 0
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if n >= len(buf) {
				return n
			}
			buf[n] = cell.New(x, y, 0)
			n++
		}
	}
	return n
}

func (r Rectangle) Enumerate() []cell.Cell {
	buf := make([]cell.Cell, r.Count())
	r.EnumerateInto(buf)
	return buf
}

func (r Rectangle) Intersect(other Bound) Bound {
	o, ok := other.(Rectangle)
	if !ok {
		return maskIntersect(r, other)
	}
	return Rectangle{
		MinX: maxInt32(r.MinX, o.MinX),
		MinY: maxInt32(r.MinY, o.MinY),
		MaxX: minInt32(r.MaxX, o.MaxX),
		MaxY: minInt32(r.MaxY, o.MaxY),
	}
}

func (r Rectangle) Union(other Bound) Bound {
	o, ok := other.(Rectangle)
	if !ok {
		return maskUnion(r, other)
	}
	if r.empty() {
		return o
	}
	if o.empty() {
		return r
	}
	return Rectangle{
		MinX: minInt32(r.MinX, o.MinX),
		MinY: minInt32(r.MinY, o.MinY),
		MaxX: maxInt32(r.MaxX, o.MaxX),
		MaxY: maxInt32(r.MaxY, o.MaxY),
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
