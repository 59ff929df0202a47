// Package metrics exposes Prometheus metrics for calls made to the wallet backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIRecorder is what the API client reports each backend call to
type APIRecorder interface {
	// ObserveAPICall records one call. status is 0 when no response was received.
	ObserveAPICall(endpoint string, status int, duration time.Duration)
}

// Collector is the Prometheus implementation of APIRecorder
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector registers the backend call metrics on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "walletweb_api_requests_total",
			Help: "Backend API calls by endpoint and response status",
		}, []string{"endpoint", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "walletweb_api_request_duration_seconds",
			Help:    "Backend API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(c.requests, c.latency)
	return c
}

func (c *Collector) ObserveAPICall(endpoint string, status int, duration time.Duration) {
	c.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Noop discards observations
type Noop struct{}

func (Noop) ObserveAPICall(string, int, time.Duration) {}

// Handler returns the Prometheus scrape handler
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
