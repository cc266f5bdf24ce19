package executor

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/viant/minirt/internal/clock"
	"github.com/viant/minirt/internal/idgen"
	"github.com/viant/minirt/internal/metrics"
	"github.com/viant/minirt/model/task"
	"github.com/viant/minirt/progress"
	"github.com/viant/minirt/service/queue"
	"github.com/viant/minirt/service/queue/memory"
	"go.uber.org/zap"
)

// Executor owns the ready queue of background tasks and drives them
// cooperatively with a root computation.  See Drive.
//
// Submit is safe for concurrent use, including from inside a Resume call.
// Drive must not be entered twice at the same time.
type Executor struct {
	queue       queue.Queue[*entry]
	queueConfig memory.Config
	logger      *zap.Logger
	listener    Listener
	metrics     *metrics.Collector
	yield       func()
	tracing     bool
	driving     atomic.Bool
}

// entry is a submitted task together with its bookkeeping.  It is owned by
// the queue while queued and by the drain pass while being resumed.
type entry struct {
	id          string
	name        string
	task        task.Task
	submittedAt time.Time
	resumes     int
}

// New creates an empty executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		queueConfig: memory.DefaultConfig(),
		logger:      zap.NewNop(),
		yield:       runtime.Gosched,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.queue = memory.NewQueue[*entry](e.queueConfig)
	return e
}

// Submit enqueues a background task and returns its ID.  The task is first
// resumed during the drain pass that follows the root's next suspension.
// Submitting a nil task panics with ErrNilTask.
func (e *Executor) Submit(ctx context.Context, t task.Task, opts ...SubmitOption) string {
	if t == nil {
		panic(ErrNilTask)
	}
	en := &entry{id: idgen.New(), task: t, submittedAt: clock.Now()}
	for _, opt := range opts {
		opt(en)
	}
	if en.name == "" {
		en.name = en.id
	}
	e.queue.PushBack(en)

	e.metrics.ObserveSubmit()
	progress.UpdateCtx(ctx, progress.Delta{Submitted: 1, Queued: 1})
	e.logger.Debug("task submitted", zap.String("task.id", en.id), zap.String("task.name", en.name))
	return en.id
}

// Len returns the number of queued background tasks.
func (e *Executor) Len() int {
	return e.queue.Len()
}

func (e *Executor) emit(event Event) {
	if e.listener != nil {
		e.listener(event)
	}
}
