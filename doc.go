// Package sylves is a toolkit for describing, navigating, and pathfinding
// over structured 2D/3D cell grids: square, hex (axial/cube), triangle,
// cube, and their vertical prism extrusions.
//
// Every grid topology implements the same grid.Grid trait — move between
// cells along a direction, enumerate live directions, map a cell to its
// world-space center/corners/AABB, and go from a world position back to a
// cell — so pathfinding, bounding, and indexing are written once against
// the trait rather than once per topology.
//
//	cell/      — Cell, Direction, Corner, Connection: the coordinate and
//	             adjacency vocabulary every grid speaks.
//	celltype/  — per-topology direction/rotation tables (square, hex,
//	             triangle, cube, prism-of-any-base).
//	rotation/  — rotation/reflection group elements and composition.
//	bound/     — finite cell-set descriptions (rectangle, parallelogram,
//	             cube, and a materialized mask for cross-variant
//	             intersections).
//	geom/      — vectors, matrices, quaternions, AABBs shared by every
//	             topology's center/corner/polygon math.
//	grid/      — the Grid trait and its concrete topologies: square, hex,
//	             triangle, cube, and PrismGrid (extrudes any 2D base along
//	             z).
//	pqueue/    — the binary min-heap backing A*/Dijkstra's lazy
//	             decrease-key discipline.
//	pathfind/  — AStar, DijkstraRun, and BFSRun over any grid.Grid, with
//	             pluggable step-length, heuristic, and accessibility
//	             callbacks.
//
//	go get github.com/katalvlaran/sylves
package sylves
