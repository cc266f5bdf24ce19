package executor

import (
	"context"

	"github.com/viant/minirt/internal/clock"
	"github.com/viant/minirt/internal/metrics"
	"github.com/viant/minirt/model/task"
	"github.com/viant/minirt/progress"
	"github.com/viant/minirt/tracing"
	"go.uber.org/zap"
)

// Drive blocks until root completes and returns its result.
//
// Each iteration resumes root once.  When root is Ready its value is returned
// right away and every task still queued is dropped without being resumed
// again.  When root is Pending, a drain pass resumes each task that is queued
// at that moment once, in FIFO order: completed tasks are discarded, pending
// ones go to the back of the queue for the next pass, and tasks submitted
// during the pass wait for the next one.  The goroutine then yields and the
// loop starts over.
//
// ctx is handed to every Resume call; Drive does not stop when ctx is done.
// Drive panics with ErrAlreadyDriving if e is already being driven, and lets
// panics raised by a computation propagate.
func Drive[T any](ctx context.Context, e *Executor, root task.Future[T]) T {
	if !e.driving.CompareAndSwap(false, true) {
		panic(ErrAlreadyDriving)
	}
	defer e.driving.Store(false)

	var span *tracing.Span
	if e.tracing {
		ctx, span = tracing.StartSpan(ctx, "executor.Drive", "INTERNAL")
		defer func() { tracing.EndSpan(span, nil) }()
	}

	started := clock.Now()
	waker := &signal{}
	for passes := 0; ; passes++ {
		poll := root.Resume(ctx, waker)
		e.metrics.ObserveResume(metrics.TargetRoot)
		e.emit(Event{Kind: RootResumed, Pass: passes, Pending: poll.IsPending()})
		progress.UpdateCtx(ctx, progress.Delta{Resumes: 1})

		if result, ok := poll.Value(); ok {
			abandoned := e.abandon(ctx, passes)
			elapsed := clock.Since(started)
			e.metrics.ObserveDrive(elapsed, abandoned)
			span.WithCounters(map[string]int{
				"executor.passes":    passes,
				"executor.abandoned": abandoned,
				"executor.wakes":     waker.count(),
			})
			e.logger.Info("drive completed",
				zap.Int("passes", passes),
				zap.Int("abandoned", abandoned),
				zap.Int("wakes", waker.count()),
				zap.Duration("elapsed", elapsed))
			return result
		}

		e.drain(ctx, span, passes+1, waker)
		if e.yield != nil {
			e.yield()
		}
	}
}

// drain gives every task queued at its start one resume attempt.  The queue
// lock is never held while a task runs.
func (e *Executor) drain(ctx context.Context, span *tracing.Span, pass int, waker task.Waker) {
	n := e.queue.Len()
	e.emit(Event{Kind: PassStarted, Pass: pass, Queued: n})

	completed := 0
	for i := 0; i < n; i++ {
		en, ok := e.queue.PopFront()
		if !ok {
			break
		}
		en.resumes++
		poll := en.task.Resume(ctx, waker)
		pending := poll.IsPending()
		e.metrics.ObserveResume(metrics.TargetBackground)
		e.emit(Event{Kind: TaskResumed, Pass: pass, TaskID: en.id, Name: en.name, Pending: pending})

		if pending {
			e.queue.PushBack(en)
			continue
		}
		completed++
		e.metrics.ObserveComplete()
		e.logger.Debug("task completed",
			zap.String("task.id", en.id),
			zap.String("task.name", en.name),
			zap.Int("resumes", en.resumes),
			zap.Duration("age", clock.Since(en.submittedAt)))
	}

	queued := e.queue.Len()
	e.metrics.ObservePass()
	progress.UpdateCtx(ctx, progress.Delta{Passes: 1, Resumes: n, Completed: completed, Queued: -completed})
	span.AddEvent("drain", map[string]int{"pass": pass, "resumed": n, "completed": completed})
	e.emit(Event{Kind: PassCompleted, Pass: pass, Queued: queued})
	e.logger.Debug("drain pass completed",
		zap.Int("pass", pass),
		zap.Int("resumed", n),
		zap.Int("completed", completed),
		zap.Int("queued", queued))
}

// abandon drops every queued task.  Abandoned tasks get no cleanup hook.
func (e *Executor) abandon(ctx context.Context, passes int) int {
	abandoned := 0
	for {
		en, ok := e.queue.PopFront()
		if !ok {
			break
		}
		abandoned++
		e.emit(Event{Kind: TaskAbandoned, Pass: passes, TaskID: en.id, Name: en.name})
		e.logger.Debug("task abandoned",
			zap.String("task.id", en.id),
			zap.String("task.name", en.name),
			zap.Int("resumes", en.resumes))
	}
	if abandoned > 0 {
		progress.UpdateCtx(ctx, progress.Delta{Abandoned: abandoned, Queued: -abandoned})
	}
	return abandoned
}
