package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/minirt/internal/metrics"
	"github.com/viant/minirt/service/queue/memory"
	"go.uber.org/zap"
)

// Option is used to customise the executor instance.
type Option func(*Executor)

// WithQueueConfig sets the configuration of the ready queue.
func WithQueueConfig(config memory.Config) Option {
	return func(e *Executor) {
		e.queueConfig = config
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithListener registers a callback invoked for every scheduling event.
// Passing nil disables the callback.
func WithListener(l Listener) Option {
	return func(e *Executor) {
		e.listener = l
	}
}

// WithMetrics registers the executor collectors on reg under namespace.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(e *Executor) {
		if reg == nil {
			return
		}
		e.metrics = metrics.New(reg, namespace)
	}
}

// WithYield overrides the hook called after every drain pass.  The default
// is runtime.Gosched; nil disables yielding entirely.
func WithYield(fn func()) Option {
	return func(e *Executor) {
		e.yield = fn
	}
}

// WithTracing records each drive call as an OpenTelemetry span.
func WithTracing(enabled bool) Option {
	return func(e *Executor) {
		e.tracing = enabled
	}
}

// SubmitOption customises a single submission.
type SubmitOption func(*entry)

// WithName labels the task in logs and events.  Unnamed tasks use their ID.
func WithName(name string) SubmitOption {
	return func(en *entry) {
		en.name = name
	}
}
