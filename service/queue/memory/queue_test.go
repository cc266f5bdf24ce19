package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestPayload struct {
	ID    string
	Count int
}

func TestQueue(t *testing.T) {
	queue := NewQueue[TestPayload](DefaultConfig())

	_, ok := queue.PopFront()
	assert.False(t, ok)
	assert.Equal(t, 0, queue.Len())

	queue.PushBack(TestPayload{ID: "a", Count: 1})
	queue.PushBack(TestPayload{ID: "b", Count: 2})
	queue.PushBack(TestPayload{ID: "c", Count: 3})
	assert.Equal(t, 3, queue.Len())

	for _, expected := range []string{"a", "b", "c"} {
		payload, ok := queue.PopFront()
		assert.True(t, ok)
		assert.Equal(t, expected, payload.ID)
	}
	_, ok = queue.PopFront()
	assert.False(t, ok)
}

func TestQueueGrowPreservesOrder(t *testing.T) {
	queue := NewQueue[int](Config{InitialCapacity: 2})

	// move the head so that growth happens on a wrapped buffer
	queue.PushBack(0)
	queue.PushBack(1)
	v, _ := queue.PopFront()
	assert.Equal(t, 0, v)

	for i := 2; i < 40; i++ {
		queue.PushBack(i)
	}
	assert.Equal(t, 39, queue.Len())
	for i := 1; i < 40; i++ {
		v, ok := queue.PopFront()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestQueueZeroValue(t *testing.T) {
	var queue Queue[string]
	queue.PushBack("x")
	v, ok := queue.PopFront()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestQueueRotate(t *testing.T) {
	queue := NewQueue[string](DefaultConfig())
	for _, id := range []string{"A", "B", "C"} {
		queue.PushBack(id)
	}
	// pop the snapshot and re-append; relative order must survive
	n := queue.Len()
	var seen []string
	for i := 0; i < n; i++ {
		id, _ := queue.PopFront()
		seen = append(seen, id)
		queue.PushBack(id)
	}
	assert.Equal(t, []string{"A", "B", "C"}, seen)
	first, _ := queue.PopFront()
	assert.Equal(t, "A", first)
}

func TestQueueConcurrency(t *testing.T) {
	queue := NewQueue[int](Config{InitialCapacity: 1})
	const producers, perProducer = 8, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				queue.PushBack(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()
	assert.Equal(t, producers*perProducer, queue.Len())

	seen := make(map[int]bool)
	for {
		v, ok := queue.PopFront()
		if !ok {
			break
		}
		seen[v] = true
	}
	assert.Len(t, seen, producers*perProducer)
}
