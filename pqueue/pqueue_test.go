package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PopsInAscendingKeyOrder(t *testing.T) {
	t.Parallel()

	q := New(0)
	keys := []float64{5, 1, 4, 2, 3}
	for _, k := range keys {
		q.Push(k, k)
	}

	var popped []float64
	for !q.IsEmpty() {
		item := q.Pop()
		popped = append(popped, item.Key)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, popped)
}

func TestQueue_PeekKeyDoesNotRemove(t *testing.T) {
	t.Parallel()

	q := New(0)
	q.Push("a", 2)
	q.Push("b", 1)

	k, ok := q.PeekKey()
	require.True(t, ok)
	assert.Equal(t, float64(1), k)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_EmptyPeek(t *testing.T) {
	t.Parallel()

	q := New(0)
	_, ok := q.PeekKey()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestQueue_LazyDuplicateKeysKeepCheapestAccessible(t *testing.T) {
	t.Parallel()

	// Mimics the pathfind package's decrease-key usage: push a stale, more
	// expensive entry for the same payload, then a cheaper one. The cheaper
	// entry pops first; the caller is responsible for discarding the stale
	// one when it is eventually popped.
	q := New(0)
	q.Push("node", 10)
	q.Push("node", 3)

	first := q.Pop()
	assert.Equal(t, float64(3), first.Key)

	second := q.Pop()
	assert.Equal(t, float64(10), second.Key)
}

func TestQueue_RandomOrderIsSorted(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))
	q := New(0)
	n := 200
	for i := 0; i < n; i++ {
		q.Push(i, rnd.Float64()*1000)
	}

	last := -1.0
	for !q.IsEmpty() {
		item := q.Pop()
		assert.GreaterOrEqual(t, item.Key, last)
		last = item.Key
	}
}

func TestQueue_Clear(t *testing.T) {
	t.Parallel()

	q := New(0)
	q.Push(1, 1)
	q.Push(2, 2)
	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}
