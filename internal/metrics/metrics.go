// Package metrics exposes Prometheus collectors for the executor.  A nil
// *Collector is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subsystem = "executor"

// Resume target labels.
const (
	TargetRoot       = "root"
	TargetBackground = "background"
)

// Collector groups the executor collectors registered on one registerer.
type Collector struct {
	Submitted     prometheus.Counter
	Completed     prometheus.Counter
	Abandoned     prometheus.Counter
	Passes        prometheus.Counter
	Resumes       *prometheus.CounterVec
	Queued        prometheus.Gauge
	DriveDuration prometheus.Histogram
}

// New registers the executor collectors on reg under namespace.  It panics
// when the same namespace is registered twice on reg.
func New(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		Submitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "submitted_total", Help: "background tasks submitted",
		}),
		Completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "completed_total", Help: "background tasks that completed",
		}),
		Abandoned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "abandoned_total", Help: "background tasks dropped when the root completed",
		}),
		Passes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "drain_passes_total", Help: "drain passes over the ready queue",
		}),
		Resumes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "resumes_total", Help: "resume attempts",
		}, []string{"target"}),
		Queued: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "queued", Help: "background tasks waiting in the ready queue",
		}),
		DriveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "drive_duration_seconds", Help: "time spent in a single drive call",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (c *Collector) ObserveSubmit() {
	if c == nil {
		return
	}
	c.Submitted.Inc()
	c.Queued.Inc()
}

func (c *Collector) ObserveResume(target string) {
	if c == nil {
		return
	}
	c.Resumes.WithLabelValues(target).Inc()
}

func (c *Collector) ObserveComplete() {
	if c == nil {
		return
	}
	c.Completed.Inc()
	c.Queued.Dec()
}

func (c *Collector) ObservePass() {
	if c == nil {
		return
	}
	c.Passes.Inc()
}

func (c *Collector) ObserveDrive(elapsed time.Duration, abandoned int) {
	if c == nil {
		return
	}
	c.DriveDuration.Observe(elapsed.Seconds())
	c.Abandoned.Add(float64(abandoned))
	c.Queued.Sub(float64(abandoned))
}
