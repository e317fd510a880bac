// Package pathfind implements A*, Dijkstra, and BFS over any grid.Grid, per
// spec.md §4.6. All three share the same neighbor enumeration
// (grid.CellDirs / grid.TryMove). A* and Dijkstra also share the
// lazy-relaxation discipline the teacher's dijkstra package uses: duplicate
// heap entries are left in place and discarded on pop once stale (popped
// key exceeds the entry's current best score, plus the heuristic for A*),
// so no decrease-key operation is ever needed. BFS uses a plain FIFO queue
// and no heap.
//
// Visited state follows spec.md §9's "arena + index" design note: entries
// live in a slice, and the heap/map carry only array indices, rather than
// threading pointers through the heap payload.
package pathfind
