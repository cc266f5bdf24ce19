package minirt

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/minirt/model/task"
	"github.com/viant/minirt/runtime/executor"
	"github.com/viant/minirt/service/queue/memory"
	"github.com/viant/minirt/tracing"
	"github.com/viant/minirt/workload"
	"go.uber.org/zap"
)

const (
	// Name is reported as the tracing service name.
	Name = "minirt"
	// Version of the runtime.
	Version = "0.1.0"
)

// Runtime bundles an executor with the logger, metrics registry and tracing
// set up from a Config.
type Runtime struct {
	config   *Config
	executor *executor.Executor
	logger   *zap.Logger
	registry *prometheus.Registry
	listener executor.Listener
}

// New validates config and builds a Runtime.  A nil config uses
// DefaultConfig.
func New(config *Config, options ...Option) (*Runtime, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	r := &Runtime{config: config}
	for _, option := range options {
		option(r)
	}
	if r.logger == nil {
		logger, err := config.Log.NewLogger()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		r.logger = logger
	}
	if config.Tracing.Enabled {
		if err := tracing.Init(Name, Version, config.Tracing.Output); err != nil {
			return nil, fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}

	opts := []executor.Option{
		executor.WithLogger(r.logger),
		executor.WithListener(r.listener),
		executor.WithQueueConfig(memory.Config{InitialCapacity: config.Executor.QueueCapacity}),
		executor.WithTracing(config.Tracing.Enabled),
	}
	if !config.Executor.YieldBetweenPasses {
		opts = append(opts, executor.WithYield(nil))
	}
	if config.Metrics.Enabled {
		if r.registry == nil {
			r.registry = prometheus.NewRegistry()
		}
		opts = append(opts, executor.WithMetrics(r.registry, config.Metrics.Namespace))
	}
	r.executor = executor.New(opts...)
	return r, nil
}

// Config returns the runtime configuration.
func (r *Runtime) Config() *Config { return r.config }

// Executor returns the runtime executor.
func (r *Runtime) Executor() *executor.Executor { return r.executor }

// Logger returns the runtime logger.
func (r *Runtime) Logger() *zap.Logger { return r.logger }

// Registry returns the metrics registry, or nil when metrics are disabled.
func (r *Runtime) Registry() *prometheus.Registry { return r.registry }

// Submit enqueues a background task on the runtime executor.
func (r *Runtime) Submit(ctx context.Context, t task.Task, opts ...executor.SubmitOption) string {
	return r.executor.Submit(ctx, t, opts...)
}

// RunWorkloads submits the configured background jobs, drives the configured
// root job to completion and returns its run time.  Progress lines are
// written to out.
func (r *Runtime) RunWorkloads(ctx context.Context, out io.Writer) time.Duration {
	program := workload.New(out)
	for _, job := range r.config.Workloads.Background {
		r.Submit(ctx, program.Background(job), executor.WithName(job.Name))
	}
	return executor.Drive(ctx, r.executor, program.Root(r.config.Workloads.Root))
}

// Shutdown flushes buffered log entries.  Sync errors on console writers are
// ignored.
func (r *Runtime) Shutdown() {
	_ = r.logger.Sync()
}
