// SPDX-License-Identifier: MIT

// Package metrics records alignment run statistics in a private Prometheus
// registry. A one-shot command cannot be scraped, so the registry is written
// out in the node_exporter textfile format when asked.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nwalign"

// Recorder holds the collectors of one process.
type Recorder struct {
	reg *prometheus.Registry

	runs        *prometheus.CounterVec
	alignments  prometheus.Counter
	cells       prometheus.Counter
	limitHits   prometheus.Counter
	alignLength prometheus.Histogram
	duration    prometheus.Histogram
}

// Run describes one finished Align call.
type Run struct {
	Cells      int           // (m+1)·(n+1)
	Alignments []int         // length of every returned alignment
	Duration   time.Duration // matrix + backtrace
	Limited    bool          // enumeration stopped by the alignment cap
	Matrix     bool          // a substitution matrix was loaded
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Alignment runs, by scoring mode.",
		}, []string{"scoring"}),
		alignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alignments_total",
			Help:      "Co-optimal alignments returned.",
		}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matrix_cells_total",
			Help:      "Dynamic programming cells filled.",
		}),
		limitHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alignment_limit_hits_total",
			Help:      "Runs whose enumeration stopped at the alignment cap.",
		}),
		alignLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alignment_length",
			Help:      "Columns per returned alignment.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "align_duration_seconds",
			Help:      "Wall time of matrix construction and backtrace.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	r.reg.MustRegister(r.runs, r.alignments, r.cells, r.limitHits, r.alignLength, r.duration)

	return r
}

// Observe records one run.
func (r *Recorder) Observe(run Run) {
	mode := "constant"
	if run.Matrix {
		mode = "matrix"
	}
	r.runs.WithLabelValues(mode).Inc()
	r.cells.Add(float64(run.Cells))
	r.alignments.Add(float64(len(run.Alignments)))
	for _, n := range run.Alignments {
		r.alignLength.Observe(float64(n))
	}
	if run.Limited {
		r.limitHits.Inc()
	}
	r.duration.Observe(run.Duration.Seconds())
}

// Gatherer exposes the registry, e.g. for tests or an HTTP handler.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
