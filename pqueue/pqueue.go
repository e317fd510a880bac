package pqueue

import "container/heap"

// Item is one entry in a Queue: an arbitrary payload ordered by Key
// (ascending — smaller keys pop first).
type Item struct {
	Value interface{}
	Key   float64
}

// Queue is a binary min-heap of Item, ordered by ascending Key. The zero
// value is not usable; construct one with New.
type Queue struct {
	h innerHeap
}

// New returns an empty Queue with room for capacity items before its first
// reallocation.
func New(capacity int) *Queue {
	q := &Queue{h: make(innerHeap, 0, capacity)}
	heap.Init(&q.h)
	return q
}

// Push inserts value with the given key. O(log n).
func (q *Queue) Push(value interface{}, key float64) {
	heap.Push(&q.h, Item{Value: value, Key: key})
}

// Pop removes and returns the item with the smallest key. O(log n). It
// panics if the queue is empty; callers should check IsEmpty first.
func (q *Queue) Pop() Item {
	return heap.Pop(&q.h).(Item)
}

// PeekKey returns the smallest key currently in the queue and true, or
// (0, false) if the queue is empty.
func (q *Queue) PeekKey() (float64, bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return q.h[0].Key, true
}

// Len returns the number of items currently in the queue.
func (q *Queue) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }

// Clear empties the queue, retaining its underlying capacity.
func (q *Queue) Clear() { q.h = q.h[:0] }

// innerHeap is the container/heap.Interface implementation backing Queue,
// grounded on the teacher's dijkstra.nodePQ.
type innerHeap []Item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].Key < h[j].Key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
