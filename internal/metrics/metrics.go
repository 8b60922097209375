// Package metrics exposes Prometheus instrumentation for the collection
// pipeline. A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "health_insights"

// Recorder holds the pipeline's collectors.
type Recorder struct {
	fetchFailures      *prometheus.CounterVec
	collectionDuration prometheus.Histogram
	collections        *prometheus.CounterVec
	latestIllnessRisk  prometheus.Gauge
	latestReadiness    prometheus.Gauge
	gatherer           prometheus.Gatherer
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newRecorder(reg, reg)
}

func newRecorder(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		fetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_failures_total",
			Help:      "Data source queries that failed and were degraded to no value.",
		}, []string{"metric"}),
		collectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "window_collection_seconds",
			Help:      "Time to collect and annotate the full day window.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		collections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_collections_total",
			Help:      "Window collections by outcome.",
		}, []string{"outcome"}),
		latestIllnessRisk: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "latest_illness_risk",
			Help:      "Illness indicator count of the most recent day.",
		}),
		latestReadiness: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "latest_readiness_score",
			Help:      "Readiness score of the most recent day.",
		}),
		gatherer: gatherer,
	}
}

// FetchFailed counts a degraded source query.
func (r *Recorder) FetchFailed(metric string) {
	if r == nil {
		return
	}
	r.fetchFailures.WithLabelValues(metric).Inc()
}

// ObserveCollection records one window collection.
func (r *Recorder) ObserveCollection(d time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.collections.WithLabelValues(outcome).Inc()
	if err == nil {
		r.collectionDuration.Observe(d.Seconds())
	}
}

// SetLatest publishes the most recent day's headline values.
func (r *Recorder) SetLatest(illnessRisk, readiness int) {
	if r == nil {
		return
	}
	r.latestIllnessRisk.Set(float64(illnessRisk))
	r.latestReadiness.Set(float64(readiness))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
