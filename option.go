package minirt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/minirt/runtime/executor"
	"go.uber.org/zap"
)

// Option customises a Runtime.
type Option func(r *Runtime)

// WithLogger overrides the logger built from the log config section.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// WithRegistry sets the registry metrics are registered on.  It is only used
// when metrics are enabled; by default a fresh registry is created.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Runtime) { r.registry = registry }
}

// WithListener registers an executor event listener.
func WithListener(listener executor.Listener) Option {
	return func(r *Runtime) { r.listener = listener }
}
