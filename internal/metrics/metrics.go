// Package metrics provides the centralized Prometheus metrics registry for
// the parlay advisor.
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EvaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "parlay_advisor",
		Name:      "evaluations_total",
		Help:      "Total number of parlay evaluations",
	})
	AdjustmentsAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parlay_advisor",
		Name:      "adjustments_applied_total",
		Help:      "Total number of leg adjustments applied, by adjuster",
	}, []string{"adjuster"})
	DataSourceErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "parlay_advisor",
		Name:      "data_source_errors_total",
		Help:      "Total number of external feed failures, by source",
	}, []string{"source"})
)

// Gauge metrics
var (
	HeadToHeadCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "parlay_advisor",
		Name:      "head_to_head_cache_hit_ratio",
		Help:      "Hit ratio of the head-to-head memo cache",
	})
	LastOverallValueScore = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "parlay_advisor",
		Name:      "last_overall_value_score",
		Help:      "Overall value score of the most recent evaluation",
	})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "parlay_advisor",
		Name:      "evaluation_duration_seconds",
		Help:      "Wall time of full parlay evaluations",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)

// Registry returns the process-wide registry, registering all metrics on
// first use.
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			EvaluationsTotal,
			AdjustmentsAppliedTotal,
			DataSourceErrorsTotal,
			HeadToHeadCacheHitRatio,
			LastOverallValueScore,
			EvaluationDuration,
		)
	})
	return registry
}

// Serve exposes the registry over HTTP. Blocks until the server fails.
func Serve(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
