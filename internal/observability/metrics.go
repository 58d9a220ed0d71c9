package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Fetch outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeCancelled = "cancelled"
)

var (
	fetchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "projects_overview",
		Subsystem: "projects",
		Name:      "fetch_total",
		Help:      "Number of project list reads grouped by outcome.",
	}, []string{"outcome"})

	fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "projects_overview",
		Subsystem: "projects",
		Name:      "fetch_duration_seconds",
		Help:      "Latency of project list reads, including the simulated delay.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	liveSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "projects_overview",
		Subsystem: "live",
		Name:      "sessions",
		Help:      "Number of mounted live project views.",
	})
)

func init() {
	prometheus.MustRegister(fetchCounter, fetchDuration, liveSessionsGauge)
}

// RecordFetch counts one read and observes its latency.
func RecordFetch(outcome string, took time.Duration) {
	fetchCounter.WithLabelValues(outcome).Inc()
	fetchDuration.Observe(took.Seconds())
}

// LiveSessionMounted increments the mounted view gauge.
func LiveSessionMounted() { liveSessionsGauge.Inc() }

// LiveSessionUnmounted decrements the mounted view gauge.
func LiveSessionUnmounted() { liveSessionsGauge.Dec() }

// FetchCount returns the current counter value for outcome.
func FetchCount(outcome string) float64 {
	return counterValue(fetchCounter.WithLabelValues(outcome))
}

// LiveSessions returns the current number of mounted views.
func LiveSessions() float64 {
	return gaugeValue(liveSessionsGauge)
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}
