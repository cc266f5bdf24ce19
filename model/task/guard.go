package task

import "context"

type guard[T any] struct {
	future Future[T]
	done   bool
}

// Guard wraps f so that resuming it after completion panics with
// ErrResumedAfterCompletion instead of resuming f again.  Guarding an already
// guarded future returns it unchanged.
func Guard[T any](f Future[T]) Future[T] {
	if g, ok := f.(*guard[T]); ok {
		return g
	}
	return &guard[T]{future: f}
}

func (g *guard[T]) Resume(ctx context.Context, waker Waker) Poll[T] {
	if g.done {
		panic(ErrResumedAfterCompletion)
	}
	poll := g.future.Resume(ctx, waker)
	if poll.IsReady() {
		g.done = true
		g.future = nil
	}
	return poll
}
