package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the executor.
// Fields are signed so a delta can both increment and decrement.
type Delta struct {
	Submitted int
	Queued    int
	Completed int
	Abandoned int
	Resumes   int
	Passes    int
}

// Progress keeps aggregated counters for one run.  It is safe for concurrent
// use.
type Progress struct {
	Name      string
	StartedAt time.Time

	SubmittedTasks int
	QueuedTasks    int
	CompletedTasks int
	AbandonedTasks int
	Resumes        int
	Passes         int

	sync.Mutex
	onChange func(Progress)
}

// Update applies d.  The onChange callback, if any, receives a copy of the
// updated tracker outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.SubmittedTasks += d.Submitted
	p.QueuedTasks += d.Queued
	p.CompletedTasks += d.Completed
	p.AbandonedTasks += d.Abandoned
	p.Resumes += d.Resumes
	p.Passes += d.Passes
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback invoked after every Update.  Passing nil
// disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// copy must be called with the lock held.
func (p *Progress) copy() Progress {
	return Progress{
		Name:           p.Name,
		StartedAt:      p.StartedAt,
		SubmittedTasks: p.SubmittedTasks,
		QueuedTasks:    p.QueuedTasks,
		CompletedTasks: p.CompletedTasks,
		AbandonedTasks: p.AbandonedTasks,
		Resumes:        p.Resumes,
		Passes:         p.Passes,
	}
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, name string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		Name:      name,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
