// Package grid implements the uniform grid contract of spec.md §4.4 over
// every supported topology: Square, Hex (flat/pointy), Triangle
// (flat-topped/flat-sides, up/down), Cube, and the hex/triangle/square
// Prism extrusions. Every concrete grid is an immutable value built by an
// explicit constructor; a grid with a bound replaced (BoundBy/Unbounded)
// produces a new grid rather than mutating the receiver, so concurrent
// readers need no locking (spec.md §5).
package grid
