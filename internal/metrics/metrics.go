// Package metrics holds the Prometheus metrics of a single batch run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for one program run
type Registry struct {
	program string
	reg     *prometheus.Registry

	// Line metrics
	Lines     *prometheus.CounterVec
	Malformed *prometheus.CounterVec

	// Run metrics
	Result   *prometheus.GaugeVec
	Duration *prometheus.HistogramVec
}

// New creates a registry whose series are labelled with program.
func New(program string) *Registry {
	r := &Registry{
		program: program,
		reg:     prometheus.NewRegistry(),

		Lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "supplyrun_lines_total",
				Help: "Total number of input lines scored",
			},
			[]string{"program"},
		),

		Malformed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "supplyrun_malformed_lines_total",
				Help: "Total number of input lines rejected, by reason",
			},
			[]string{"program", "reason"},
		),

		Result: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "supplyrun_result",
				Help: "Number printed by the last successful run",
			},
			[]string{"program"},
		),

		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "supplyrun_run_duration_seconds",
				Help:    "Wall time of a run from input read to result",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"program"},
		),
	}

	r.reg.MustRegister(r.Lines, r.Malformed, r.Result, r.Duration)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// LineScored counts one scored line.
func (r *Registry) LineScored() {
	r.Lines.WithLabelValues(r.program).Inc()
}

// LineRejected counts one malformed line.
func (r *Registry) LineRejected(reason string) {
	r.Malformed.WithLabelValues(r.program, reason).Inc()
}

// RecordResult stores the final number and how long the run took.
func (r *Registry) RecordResult(value float64, elapsed time.Duration) {
	r.Result.WithLabelValues(r.program).Set(value)
	r.Duration.WithLabelValues(r.program).Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry in text exposition format for the
// node_exporter textfile collector. An empty path is a no-op.
func (r *Registry) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
