package task

import (
	"context"
	"time"
)

// Func adapts an ordinary function to the Future interface.  The function is
// called on every resume and is responsible for its own state.
type Func[T any] func(ctx context.Context, waker Waker) Poll[T]

// Resume calls f.
func (f Func[T]) Resume(ctx context.Context, waker Waker) Poll[T] {
	return f(ctx, waker)
}

// Completed returns a future that is Ready with v on its first resume.
func Completed[T any](v T) Future[T] {
	return Guard[T](Func[T](func(context.Context, Waker) Poll[T] {
		return Ready(v)
	}))
}

// Blocking returns a future that runs fn synchronously inside its first
// resume and completes with its result.  The driver of the future is blocked
// for as long as fn runs.
func Blocking[T any](fn func(ctx context.Context) T) Future[T] {
	return Guard[T](Func[T](func(ctx context.Context, _ Waker) Poll[T] {
		return Ready(fn(ctx))
	}))
}

// Sleep returns a future that blocks the calling goroutine for d inside its
// first resume.  It does not yield while sleeping.
func Sleep(d time.Duration) Future[Unit] {
	return Blocking(func(context.Context) Unit {
		time.Sleep(d)
		return Unit{}
	})
}

// Discard turns f into a background Task that drops f's result.
func Discard[T any](f Future[T]) Task {
	if t, ok := any(f).(Task); ok {
		return t
	}
	return Func[Unit](func(ctx context.Context, waker Waker) Poll[Unit] {
		if f.Resume(ctx, waker).IsPending() {
			return Pending[Unit]()
		}
		return Ready(Unit{})
	})
}

type then[A, B any] struct {
	first  Future[A]
	next   func(A) Future[B]
	second Future[B]
}

// Then runs first to completion and continues with the future returned by
// next.  The continuation is built and resumed within the same Resume call in
// which first completes, so no extra suspension is introduced.
func Then[A, B any](first Future[A], next func(A) Future[B]) Future[B] {
	return Guard[B](&then[A, B]{first: first, next: next})
}

func (t *then[A, B]) Resume(ctx context.Context, waker Waker) Poll[B] {
	if t.second == nil {
		v, ok := t.first.Resume(ctx, waker).Value()
		if !ok {
			return Pending[B]()
		}
		t.second = t.next(v)
		t.first, t.next = nil, nil
	}
	return t.second.Resume(ctx, waker)
}
