package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "salon_dashboard"

// Recorder holds the collectors of the dashboard engine. A nil *Recorder
// records nothing.
type Recorder struct {
	degraded *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_degraded_total",
			Help:      "Upstream collections replaced by an empty substitute.",
		}, []string{"collection"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Dashboard operations that returned an error.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Time spent fetching and aggregating.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	if reg != nil {
		reg.MustRegister(r.degraded, r.failures, r.duration)
	}
	return r
}

func (r *Recorder) Degraded(collection string) {
	if r == nil {
		return
	}
	r.degraded.WithLabelValues(collection).Inc()
}

func (r *Recorder) Failed(operation string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(operation).Inc()
}

func (r *Recorder) Observe(operation string, since time.Time) {
	if r == nil {
		return
	}
	r.duration.WithLabelValues(operation).Observe(time.Since(since).Seconds())
}

// DegradedCounter and FailureCounter expose the collectors for tests.
func (r *Recorder) DegradedCounter(collection string) prometheus.Counter {
	return r.degraded.WithLabelValues(collection)
}

func (r *Recorder) FailureCounter(operation string) prometheus.Counter {
	return r.failures.WithLabelValues(operation)
}
