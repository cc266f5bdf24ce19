package memory

import (
	"sync"

	"github.com/viant/minirt/service/queue"
)

// Config for the in-memory queue
type Config struct {
	// InitialCapacity is the number of slots allocated up front.
	InitialCapacity int `json:"initialCapacity" yaml:"initialCapacity"`
}

// DefaultConfig returns a standard configuration for the memory queue
func DefaultConfig() Config {
	return Config{InitialCapacity: 16}
}

// Queue implements queue.Queue on a growable ring buffer guarded by a mutex.
// The lock is held only for the duration of a single operation.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	size  int
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.InitialCapacity <= 0 {
		config.InitialCapacity = DefaultConfig().InitialCapacity
	}
	return &Queue[T]{items: make([]T, config.InitialCapacity)}
}

// PushBack appends t
func (q *Queue[T]) PushBack(t T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = t
	q.size++
}

// PopFront removes the earliest item
func (q *Queue[T]) PopFront() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.size == 0 {
		return zero, false
	}
	t := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return t, true
}

// Len returns the current number of items
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

func (q *Queue[T]) grow() {
	capacity := 2 * len(q.items)
	if capacity == 0 {
		capacity = DefaultConfig().InitialCapacity
	}
	items := make([]T, capacity)
	for i := 0; i < q.size; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items = items
	q.head = 0
}

// ensure Queue implements queue.Queue interface
var _ queue.Queue[any] = (*Queue[any])(nil)
