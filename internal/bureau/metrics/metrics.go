package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the bureau context pipeline.
type Metrics struct {
	ContextsBuilt      prometheus.Counter
	NormalizeDuration  prometheus.Histogram
	LookupLatency      prometheus.Histogram
	LookupFailures     prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	SparsePayloads     prometheus.Counter
	InvalidPayloads    prometheus.Counter
}

// New creates and registers all bureau metrics.
func New() *Metrics {
	return &Metrics{
		ContextsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_contexts_built_total",
			Help: "Total number of AI context payloads produced",
		}),
		NormalizeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "spc_gateway_normalize_duration_seconds",
			Help:    "Time spent normalizing one raw envelope",
			Buckets: prometheus.DefBuckets,
		}),
		LookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "spc_gateway_lookup_latency_seconds",
			Help:    "Latency of bureau record lookups",
			Buckets: prometheus.DefBuckets,
		}),
		LookupFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_lookup_failures_total",
			Help: "Total number of failed bureau record lookups",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_context_cache_hits_total",
			Help: "Normalized contexts served from cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_context_cache_misses_total",
			Help: "Context requests that required a bureau lookup",
		}),
		SparsePayloads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_sparse_payloads_total",
			Help: "Payloads with no negative records at all (clean applicants)",
		}),
		InvalidPayloads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spc_gateway_invalid_payloads_total",
			Help: "Raw envelopes rejected because they were not valid JSON",
		}),
	}
}

// ObserveLookupLatency records one bureau lookup round trip.
func (m *Metrics) ObserveLookupLatency(d time.Duration) {
	m.LookupLatency.Observe(d.Seconds())
}

// ObserveNormalizeDuration records one normalization pass.
func (m *Metrics) ObserveNormalizeDuration(d time.Duration) {
	m.NormalizeDuration.Observe(d.Seconds())
}
