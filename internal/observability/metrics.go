// Package observability holds the Prometheus collectors for upstream fetches.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeLoaded = "loaded"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)

// Response shapes used as the "shape" label.
const (
	ShapeBare     = "bare"
	ShapeEnvelope = "envelope"
	ShapeOther    = "other"
)

var (
	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "fetch_total",
		Help:      "Upstream collection fetches by resource and outcome.",
	}, []string{"resource", "outcome"})
	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of upstream collection fetches, including body decode.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})
	responseShapes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "response_shape_total",
		Help:      "Decoded upstream bodies by shape (bare array, results envelope, other).",
	}, []string{"resource", "shape"})
	recordsRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "pages",
		Name:      "records_rendered_total",
		Help:      "Rows or cards rendered per resource.",
	}, []string{"resource"})
)

func init() {
	prometheus.MustRegister(fetchTotal, fetchDuration, responseShapes, recordsRendered)
}

// RecordFetch counts one fetch and observes its latency.
func RecordFetch(resource, outcome string, elapsed time.Duration) {
	fetchTotal.WithLabelValues(resource, outcome).Inc()
	fetchDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// RecordShape counts the shape of a decoded upstream body.
func RecordShape(resource, shape string) {
	responseShapes.WithLabelValues(resource, shape).Inc()
}

// RecordRendered adds n rendered rows or cards for resource.
func RecordRendered(resource string, n int) {
	if n <= 0 {
		return
	}
	recordsRendered.WithLabelValues(resource).Add(float64(n))
}
