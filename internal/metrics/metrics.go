// Package metrics exposes Prometheus metrics about upstream API calls
// and navbar renders.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeStatus  = "status"
	OutcomeDecode  = "decode"
	OutcomeError   = "error"
)

type UpstreamRecorder interface {
	RecordUpstreamRequest(endpoint string, outcome string, duration time.Duration)
}

type RenderRecorder interface {
	RecordRender(state string)
}

type Collector struct {
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	renders          *prometheus.CounterVec
}

func (c *Collector) RecordUpstreamRequest(endpoint string, outcome string, duration time.Duration) {
	c.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	c.upstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (c *Collector) RecordRender(state string) {
	c.renders.WithLabelValues(state).Inc()
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentor_upstream_requests_total",
			Help: "Rentor API requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rentor_upstream_request_duration_seconds",
			Help:    "Rentor API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentor_navbar_renders_total",
			Help: "Navbar renders by display state",
		}, []string{"state"}),
	}

	reg.MustRegister(c.upstreamRequests, c.upstreamLatency, c.renders)

	return c
}

var (
	_ UpstreamRecorder = &Collector{}
	_ RenderRecorder   = &Collector{}
)

type NoopRecorder struct{}

func (NoopRecorder) RecordUpstreamRequest(endpoint string, outcome string, duration time.Duration) {}

func (NoopRecorder) RecordRender(state string) {}

var (
	_ UpstreamRecorder = NoopRecorder{}
	_ RenderRecorder   = NoopRecorder{}
)
