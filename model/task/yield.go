package task

import "context"

// YieldPoint suspends exactly once and then completes.
//
// The first Resume wakes the caller and returns Pending; the second returns
// Ready.  Resuming it again panics with ErrResumedAfterCompletion.
type YieldPoint struct {
	yielded bool
	done    bool
}

// YieldNow returns a fresh YieldPoint.  Composing it in front of other work
// inserts one cooperative breakpoint without doing any real work.
func YieldNow() *YieldPoint {
	return &YieldPoint{}
}

// Resume implements Future.
func (y *YieldPoint) Resume(_ context.Context, waker Waker) Poll[Unit] {
	switch {
	case y.done:
		panic(ErrResumedAfterCompletion)
	case y.yielded:
		y.done = true
		return Ready(Unit{})
	}
	y.yielded = true
	waker.Wake()
	return Pending[Unit]()
}

// Yielded reports whether the yield point already suspended.
func (y *YieldPoint) Yielded() bool { return y.yielded }

// Done reports whether the yield point completed.
func (y *YieldPoint) Done() bool { return y.done }
