// Package queue defines the ready queue holding background computations
// that wait for their turn to be resumed.
package queue

// Queue is an ordered FIFO holding area.  Implementations must serialize
// every operation; none of them may block waiting for items.
type Queue[T any] interface {
	// PushBack appends t at the back of the queue.
	PushBack(t T)

	// PopFront removes and returns the earliest item, or false when the
	// queue is empty.
	PopFront() (T, bool)

	// Len returns the number of queued items.
	Len() int
}
