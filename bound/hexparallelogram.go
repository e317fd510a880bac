package bound

import "github.com/katalvlaran/sylves/cell"

// HexParallelogram is the hex-grid Bound variant: all cells with axial
// coordinates (q, r) — stored as Cell{X: q, Y: r, Z: 0} — within inclusive
// extents. A parallelogram in axial space, not a hexagon in world space.
type HexParallelogram struct {
	MinQ, MinR, MaxQ, MaxR int32
}

// NewHexParallelogram returns a HexParallelogram bound over the given
// inclusive axial extents.
func NewHexParallelogram(minQ, minR, maxQ, maxR int32) HexParallelogram {
	return HexParallelogram{MinQ: minQ, MinR: minR, MaxQ: maxQ, MaxR: maxR}
}

func (h HexParallelogram) empty() bool { return h.MinQ > h.MaxQ || h.MinR > h.MaxR }

func (h HexParallelogram) Contains(c cell.Cell) bool {
	if h.empty() {
		return false
	}
	return c.Z == 0 && c.X >= h.MinQ && c.X <= h.MaxQ && c.Y >= h.MinR && c.Y <= h.MaxR
}

func (h HexParallelogram) Count() int64 {
	if h.empty() {
		return 0
	}
	return int64(h.MaxQ-h.MinQ+1) * int64(h.MaxR-h.MinR+1)
}

func (h HexParallelogram) EnumerateInto(buf []cell.Cell) int {
	n := 0
	for r := h.MinR; r <= h.MaxR; r++ {
		for q := h.MinQ; q <= h.MaxQ; q++ {
			if n >= len(buf) {
				return n
			}
			buf[n] = cell.New(q, r, 0)
			n++
		}
	}
	return n
}

func (h HexParallelogram) Enumerate() []cell.Cell {
	buf := make([]cell.Cell, h.Count())
	h.EnumerateInto(buf)
	return buf
}

func (h HexParallelogram) Intersect(other Bound) Bound {
	o, ok := other.(HexParallelogram)
	if !ok {
		return maskIntersect(h, other)
	}
	return HexParallelogram{
		MinQ: maxInt32(h.MinQ, o.MinQ), MinR: maxInt32(h.MinR, o.MinR),
		MaxQ: minInt32(h.MaxQ, o.MaxQ), MaxR: minInt32(h.MaxR, o.MaxR),
	}
}

func (h HexParallelogram) Union(other Bound) Bound {
	o, ok := other.(HexParallelogram)
	if !ok {
		return maskUnion(h, other)
	}
	if h.empty() {
		return o
	}
	if o.empty() {
		return h
	}
	return HexParallelogram{
		MinQ: minInt32(h.MinQ, o.MinQ), MinR: minInt32(h.MinR, o.MinR),
		MaxQ: maxInt32(h.MaxQ, o.MaxQ), MaxR: maxInt32(h.MaxR, o.MaxR),
	}
}
