// Package metrics collects Prometheus counters for logins, two-factor events
// and HTTP traffic, and serves them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	LoginSuccess            = "success"
	LoginTwoFactorRequired  = "two_factor_required"
	LoginInvalidCredentials = "invalid_credentials"
)

// Two-factor events.
const (
	TwoFactorSetupStarted = "setup_started"
	TwoFactorEnabled      = "enabled"
	TwoFactorSuperseded   = "superseded"
	TwoFactorInvalidCode  = "invalid_code"
	TwoFactorVerified     = "verified"
	TwoFactorDisabled     = "disabled"
	TwoFactorExpired      = "expired"
)

// Recorder is what the service layer reports to.
type Recorder interface {
	RecordLogin(outcome string)
	RecordTwoFactor(event string)
	RecordTwoFactorN(event string, n int64)
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) RecordLogin(string)             {}
func (Nop) RecordTwoFactor(string)         {}
func (Nop) RecordTwoFactorN(string, int64) {}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	logins      *prometheus.CounterVec
	twoFactor   *prometheus.CounterVec
	httpStatus  *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
	rateLimited *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encore_logins_total",
			Help: "Password login attempts by outcome.",
		}, []string{"outcome"}),
		twoFactor: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encore_two_factor_events_total",
			Help: "Two-factor enrollment and verification events.",
		}, []string{"event"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encore_http_responses_total",
			Help: "HTTP responses by method and status code.",
		}, []string{"method", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "encore_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "encore_rate_limited_total",
			Help: "Requests refused by the rate limiter, by route pattern.",
		}, []string{"route"}),
	}

	reg.MustRegister(
		c.logins,
		c.twoFactor,
		c.httpStatus,
		c.httpLatency,
		c.rateLimited,
	)

	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordTwoFactor(event string) {
	c.twoFactor.WithLabelValues(event).Inc()
}

func (c *Collector) RecordTwoFactorN(event string, n int64) {
	if n <= 0 {
		return
	}
	c.twoFactor.WithLabelValues(event).Add(float64(n))
}

// ObserveHTTP records one finished request. Its signature matches
// slogx.Observer so it can hang off the request logger.
func (c *Collector) ObserveHTTP(r *http.Request, status int, elapsed time.Duration) {
	c.httpStatus.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(r.Method).Observe(elapsed.Seconds())
}

// ObserveRateLimited counts a request refused with 429. Its signature
// matches httpx.RejectHook.
func (c *Collector) ObserveRateLimited(r *http.Request, _ string) {
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	c.rateLimited.WithLabelValues(route).Inc()
}

// Handler returns the scrape endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
