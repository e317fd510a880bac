package bound

import "github.com/katalvlaran/sylves/cell"

// TriangleParallelogram is the triangle-grid Bound variant: every triangle
// cell (x, y, z) with x+y+z in {1, 2} whose x and y fall within inclusive
// extents (z is determined by x, y and the parity it takes). Each (x, y)
// pair in range therefore contributes exactly two cells — one up-pointing
// (sum 2), one down-pointing (sum 1) — matching how a triangle grid tiles
// the same parallelogram a hex grid's axial (q, r) would (spec.md §4.4.3).
type TriangleParallelogram struct {
	MinX, MinY, MaxX, MaxY int32
}

// NewTriangleParallelogram returns a TriangleParallelogram bound over the
// given inclusive (x, y) extents.
func NewTriangleParallelogram(minX, minY, maxX, maxY int32) TriangleParallelogram {
	return TriangleParallelogram{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (t TriangleParallelogram) empty() bool { return t.MinX > t.MaxX || t.MinY > t.MaxY }

func (t TriangleParallelogram) Contains(c cell.Cell) bool {
	if t.empty() {
		return false
	}
	sum := c.X + c.Y + c.Z
	if sum != 1 && sum != 2 {
		return false
	}
	return c.X >= t.MinX && c.X <= t.MaxX && c.Y >= t.MinY && c.Y <= t.MaxY
}

func (t TriangleParallelogram) Count() int64 {
	if t.empty() {
		return 0
	}
	return 2 * int64(t.MaxX-t.MinX+1) * int64(t.MaxY-t.MinY+1)
}

func (t TriangleParallelogram) EnumerateInto(buf []cell.Cell) int {
	n := 0
	for y := t.MinY; y <= t.MaxY; y++ {
		for x := t.MinX; x <= t.MaxX; x++ {
			for _, sum := range [2]int32{1, 2} {
				if n >= len(buf) {
					return n
				}
				buf[n] = cell.New(x, y, sum-x-y)
				n++
			}
		}
	}
	return n
}

func (t TriangleParallelogram) Enumerate() []cell.Cell {
	buf := make([]cell.Cell, t.Count())
	t.EnumerateInto(buf)
	return buf
}

func (t TriangleParallelogram) Intersect(other Bound) Bound {
	o, ok := other.(TriangleParallelogram)
	if !ok {
		return maskIntersect(t, other)
	}
	return TriangleParallelogram{
		MinX: maxInt32(t.MinX, o.MinX), MinY: maxInt32(t.MinY, o.MinY),
		MaxX: minInt32(t.MaxX, o.MaxX), MaxY: minInt32(t.MaxY, o.MaxY),
	}
}

func (t TriangleParallelogram) Union(other Bound) Bound {
	o, ok := other.(TriangleParallelogram)
	if !ok {
		return maskUnion(t, other)
	}
	if t.empty() {
		return o
	}
	if o.empty() {
		return t
	}
	return TriangleParallelogram{
		MinX: minInt32(t.MinX, o.MinX), MinY: minInt32(t.MinY, o.MinY),
		MaxX: maxInt32(t.MaxX, o.MaxX), MaxY: maxInt32(t.MaxY, o.MaxY),
	}
}
