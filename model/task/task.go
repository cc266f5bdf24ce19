package task

import "context"

// Unit is the result of computations that produce no value.
type Unit = struct{}

// Waker requests another resume attempt of the computation it was handed to.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// NoopWaker ignores every wake request.
var NoopWaker Waker = WakerFunc(func() {})

// Poll is the outcome of a single resume attempt.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a terminal Poll carrying v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a Poll reporting that the computation stalled at a
// suspension point.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether the computation completed.
func (p Poll[T]) IsReady() bool { return p.ready }

// IsPending reports whether the computation has to be resumed again.
func (p Poll[T]) IsPending() bool { return !p.ready }

// Value returns the result and true when p is Ready, or the zero value and
// false otherwise.
func (p Poll[T]) Value() (T, bool) {
	return p.value, p.ready
}

// Future is a computation that can be resumed until it produces a T.
//
// Once Resume has returned a Ready poll the future must not be resumed again.
type Future[T any] interface {
	Resume(ctx context.Context, waker Waker) Poll[T]
}

// Task is a background computation whose result is ignored.
type Task = Future[Unit]
