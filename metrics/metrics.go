// Package metrics exports MST run statistics as Prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/parmst/kruskal"
)

const namespace = "parmst"

var durationBuckets = []float64{0.0001, 0.001, 0.01, 0.1, 1, 10}

// Recorder implements kruskal.Observer. It is safe for concurrent use, so a
// single Recorder can observe both a coordinator and a worker server.
type Recorder struct {
	examined        *prometheus.CounterVec
	accepted        *prometheus.CounterVec
	workerDuration  prometheus.Histogram
	merges          prometheus.Counter
	mergeCandidates prometheus.Histogram
	mergeAccepted   prometheus.Counter
	mergeDuration   prometheus.Histogram
}

var _ kruskal.Observer = (*Recorder)(nil)

// NewRecorder registers the collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		examined: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_edges_examined_total",
			Help:      "Edges examined in the local phase, by worker index.",
		}, []string{"worker"}),
		accepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_edges_accepted_total",
			Help:      "Candidate edges kept in the local phase, by worker index.",
		}, []string{"worker"}),
		workerDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "worker_duration_seconds",
			Help:      "Local phase wall time per worker.",
			Buckets:   durationBuckets,
		}),
		merges: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Completed merge passes.",
		}),
		mergeCandidates: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "merge_candidates",
			Help:      "Candidate edges fed to one merge pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		mergeAccepted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_edges_accepted_total",
			Help:      "Edges accepted into final results.",
		}),
		mergeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "merge_duration_seconds",
			Help:      "Merge pass wall time.",
			Buckets:   durationBuckets,
		}),
	}
}

// ObserveWorker implements kruskal.Observer.
func (r *Recorder) ObserveWorker(s kruskal.WorkerStats) {
	w := strconv.Itoa(s.Worker)
	r.examined.WithLabelValues(w).Add(float64(s.Examined))
	r.accepted.WithLabelValues(w).Add(float64(s.Accepted))
	r.workerDuration.Observe(s.Elapsed.Seconds())
}

// ObserveMerge implements kruskal.Observer.
func (r *Recorder) ObserveMerge(s kruskal.MergeStats) {
	r.merges.Inc()
	r.mergeCandidates.Observe(float64(s.Candidates))
	r.mergeAccepted.Add(float64(s.Accepted))
	r.mergeDuration.Observe(s.Elapsed.Seconds())
}
