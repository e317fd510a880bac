// Package celltype implements the per-topology cell-type registry of
// spec.md §4.2: for each topology, the direction count, corner count,
// canonical corner positions, and the rotation/reflection group acting on
// directions and corners.
//
// Every CellType value is a stateless singleton — constructing one twice
// (Square(), FlatHex(), ...) is idempotent because the types carry no
// state at all; they are pure functions of (topology, orientation).
package celltype
