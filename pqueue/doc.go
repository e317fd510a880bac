// Package pqueue implements a binary min-heap keyed by float64, carrying an
// arbitrary payload, per spec.md §4.5. It is built directly on
// container/heap and follows the same "lazy decrease-key" contract the
// pathfind package's callers rely on: pushing a cheaper entry for a
// payload already in the queue is cheap and correct, and stale entries are
// simply skipped by the caller rather than removed in place — the same
// pattern the teacher's dijkstra package uses for its vertex heap.
package pqueue
