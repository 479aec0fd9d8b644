package accounts

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeCreated            = "created"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalid            = "invalid"
	OutcomeError              = "error"
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
)

// Metrics records registry activity. A nil *Metrics is a no-op.
type Metrics struct {
	registrations    *prometheus.CounterVec
	logins           *prometheus.CounterVec
	registerDuration prometheus.Histogram
	activeSessions   prometheus.Gauge
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "garage",
			Subsystem: "accounts",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"outcome"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "garage",
			Subsystem: "accounts",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		registerDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "garage",
			Subsystem: "accounts",
			Name:      "register_duration_seconds",
			Help:      "Time spent handling a registration, including password hashing.",
			Buckets:   prometheus.DefBuckets,
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "garage",
			Subsystem: "accounts",
			Name:      "sessions_opened",
			Help:      "Sessions opened minus sessions closed by logout since start.",
		}),
	}
}

func (m *Metrics) ObserveRegistration(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome).Inc()
	m.registerDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
