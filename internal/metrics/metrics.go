// Package metrics exposes Prometheus collectors for the guestbook service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	submissionsTotal           *prometheus.CounterVec
	geoLookupsTotal            *prometheus.CounterVec
	probesTotal                *prometheus.CounterVec
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	websitesAlive              prometheus.Gauge

	once sync.Once
)

// Init registers the collectors. It is safe to call more than once; every
// Observe helper calls it.
func Init() {
	once.Do(func() {
		submissionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guestbook_submissions_total",
				Help: "Submissions processed, labeled by outcome and rejection reason.",
			},
			[]string{"outcome", "reason"},
		)

		geoLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guestbook_geo_lookups_total",
				Help: "Geolocation lookups, labeled by result (hit, success, failure).",
			},
			[]string{"result"},
		)

		probesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guestbook_liveness_probes_total",
				Help: "Website liveness probes, labeled by result.",
			},
			[]string{"result"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)

		websitesAlive = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "guestbook_websites_alive",
				Help: "Number of stored websites that answered the last status refresh.",
			},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

// ObserveSubmission counts one processed submission. reason is empty for
// accepted submissions.
func ObserveSubmission(outcome, reason string) {
	Init()
	submissionsTotal.WithLabelValues(outcome, reason).Inc()
}

// ObserveGeoLookup counts one geolocation lookup.
func ObserveGeoLookup(result string) {
	Init()
	geoLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveProbe counts one liveness probe.
func ObserveProbe(alive bool) {
	Init()
	result := "down"
	if alive {
		result = "up"
	}
	probesTotal.WithLabelValues(result).Inc()
}

// SetWebsitesAlive records the result of a status refresh.
func SetWebsitesAlive(n int) {
	Init()
	websitesAlive.Set(float64(n))
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	Init()
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
