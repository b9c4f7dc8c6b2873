package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check-in outcomes recorded on the checkins counter.
const (
	OutcomeSuccess = "success"
	OutcomeRepeat  = "repeat"
	OutcomeUnknown = "unknown_token"
)

// Metrics holds the Prometheus instruments for the service. A nil *Metrics
// is valid and records nothing, so wiring stays optional in tests.
type Metrics struct {
	Registrations prometheus.Counter
	Checkins      *prometheus.CounterVec
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "absensi_registrations_total",
			Help: "Total number of participants registered.",
		}),
		Checkins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "absensi_checkins_total",
			Help: "Total number of check-in attempts by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

func (m *Metrics) RecordCheckin(outcome string) {
	if m == nil {
		return
	}
	m.Checkins.WithLabelValues(outcome).Inc()
}
