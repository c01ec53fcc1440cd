package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder over a prometheus registry.
type PrometheusRecorder struct {
	generated  *prometheus.CounterVec
	skipped    *prometheus.CounterVec
	excluded   *prometheus.CounterVec
	unresolved prometheus.Counter
	ambiguous  prometheus.Counter
	duration   prometheus.Histogram
}

// NewPrometheusRecorder creates and registers the generation metrics.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxsitegen_documents_generated_total",
			Help: "Documents rendered and written, by kind.",
		}, []string{"kind"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxsitegen_documents_skipped_total",
			Help: "Documents skipped as unchanged by the state cache, by kind.",
		}, []string{"kind"}),
		excluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxsitegen_documents_excluded_total",
			Help: "Documents excluded by eligibility rules, by kind.",
		}, []string{"kind"}),
		unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxsitegen_unresolved_references_total",
			Help: "Related-document URLs with no corpus match.",
		}),
		ambiguous: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taxsitegen_ambiguous_decision_slugs_total",
			Help: "Decision slugs derived without a number and a year.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taxsitegen_run_duration_seconds",
			Help:    "Full generation run duration.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}

	reg.MustRegister(r.generated, r.skipped, r.excluded, r.unresolved, r.ambiguous, r.duration)
	return r
}

func (r *PrometheusRecorder) DocumentGenerated(kind string) {
	r.generated.WithLabelValues(kind).Inc()
}

func (r *PrometheusRecorder) DocumentSkipped(kind string) {
	r.skipped.WithLabelValues(kind).Inc()
}

func (r *PrometheusRecorder) DocumentExcluded(kind string) {
	r.excluded.WithLabelValues(kind).Inc()
}

func (r *PrometheusRecorder) UnresolvedReference() {
	r.unresolved.Inc()
}

func (r *PrometheusRecorder) AmbiguousDecisionSlug() {
	r.ambiguous.Inc()
}

func (r *PrometheusRecorder) RunCompleted(d time.Duration) {
	r.duration.Observe(d.Seconds())
}
