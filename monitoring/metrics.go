package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/easelkit/easel/component"
)

// Metrics holds the Prometheus metrics for component transformations.
type Metrics struct {
	TransformsTotal   *prometheus.CounterVec
	TransformDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics collector registered against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransformsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "easel_transforms_total",
				Help: "Total number of component transformations",
			},
			[]string{"component", "op", "status"},
		),
		TransformDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "easel_transform_duration_seconds",
				Help:    "Component transformation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"component", "op"},
		),
	}
}

// RecordTransform records one transformation call.
func (m *Metrics) RecordTransform(kind, op, status string, duration time.Duration) {
	m.TransformsTotal.WithLabelValues(kind, op, status).Inc()
	m.TransformDuration.WithLabelValues(kind, op).Observe(duration.Seconds())
}

// Instrument wraps an output component so every Postprocess (and Rebuild,
// when supported) call is counted and timed. The wrapper preserves the
// Rebuilder interface only when the underlying component implements it.
func Instrument(c component.Output, m *Metrics) component.Output {
	wrapped := instrumented{Output: c, metrics: m}
	if rb, ok := c.(component.Rebuilder); ok {
		return &instrumentedRebuilder{instrumented: wrapped, rebuilder: rb}
	}
	return &wrapped
}

type instrumented struct {
	component.Output
	metrics *Metrics
}

func (i *instrumented) Postprocess(value interface{}) (interface{}, error) {
	start := time.Now()
	out, err := i.Output.Postprocess(value)
	i.metrics.RecordTransform(i.Kind(), "postprocess", statusOf(err), time.Since(start))
	return out, err
}

type instrumentedRebuilder struct {
	instrumented
	rebuilder component.Rebuilder
}

func (i *instrumentedRebuilder) Rebuild(dir string, data interface{}) (interface{}, error) {
	start := time.Now()
	out, err := i.rebuilder.Rebuild(dir, data)
	i.metrics.RecordTransform(i.Kind(), "rebuild", statusOf(err), time.Since(start))
	return out, err
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
