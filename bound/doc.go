// Package bound implements the topology-tagged finite cell regions of
// spec.md §3 and §4.3: Rectangle, Cube, HexParallelogram,
// TriangleParallelogram, Mask, and the AABB(float box) variant — resolved
// via FromAABB, since turning a world-space box into cells needs grid
// geometry this package doesn't have. Every Bound has inclusive extents; an
// empty range is valid and reports Count() == 0.
//
// Cross-variant Intersect/Union degrade to a Mask that is built at call
// time: Intersect keeps the receiver's cells that the other bound Contains,
// and Union appends the other bound's cells to the receiver's. The Mask is
// materialized immediately, not deferred until first enumeration.
package bound

import (
	"errors"

	"github.com/katalvlaran/sylves/cell"
)

// ErrBufferTooSmall is returned by EnumerateBuffer when the caller's buffer
// cannot hold every cell; EnumerateInto itself never errors, matching
// spec.md §4.3's "fill partially and return count" contract.
var ErrBufferTooSmall = errors.New("bound: buffer too small")

// EnumerateBuffer fills buf with b's cells and errors if buf was too small
// to hold all of them, for callers that want a checked variant of
// EnumerateInto.
func EnumerateBuffer(b Bound, buf []cell.Cell) (int, error) {
	n := b.EnumerateInto(buf)
	if int64(n) < b.Count() {
		return n, ErrBufferTooSmall
	}
	return n, nil
}
