// Package metrics provides collection and exposition of Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/naka-gawa/portfolio/internal/domain"
)

// Collector records GitHub fetch, widget and HTTP metrics.
type Collector struct {
	fetchTotal   *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec
	widgetTotal  *prometheus.CounterVec
	httpTotal    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_github_fetch_total",
			Help: "GitHub API requests by endpoint and result.",
		}, []string{"endpoint", "result"}),
		fetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_github_fetch_latency_seconds",
			Help:    "GitHub API request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		widgetTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_widget_settled_total",
			Help: "Settled GitHub widget loads by status.",
		}, []string{"status"}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP responses by route and status code.",
		}, []string{"route", "status_code"}),
	}

	reg.MustRegister(c.fetchTotal, c.fetchLatency, c.widgetTotal, c.httpTotal)
	return c
}

// ObserveFetch records the outcome and latency of one GitHub request.
func (c *Collector) ObserveFetch(endpoint string, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.fetchTotal.WithLabelValues(endpoint, result).Inc()
	c.fetchLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveWidget records a settled widget state.
func (c *Collector) ObserveWidget(state domain.WidgetState) {
	c.widgetTotal.WithLabelValues(state.Status()).Inc()
}

// ObserveRequest records one HTTP response.
func (c *Collector) ObserveRequest(route string, statusCode int) {
	c.httpTotal.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
