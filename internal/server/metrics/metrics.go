// Package metrics exposes the server's Prometheus counters and the HTTP
// endpoint that serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokengate"

// Outcome labels.
const (
	OutcomeOK                = "ok"
	OutcomeNoop              = "noop"
	OutcomeRejected          = "rejected"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeConflict          = "conflict"
	OutcomeError             = "error"
)

// Metrics owns a private registry. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	logins        *prometheus.CounterVec
	capChanges    *prometheus.CounterVec
	tokensCharged *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Sign-in attempts by auth mode and outcome.",
		}, []string{"mode", "outcome"}),
		capChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_changes_total",
			Help:      "Capability access change requests by domain and outcome.",
		}, []string{"domain", "outcome"}),
		tokensCharged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_tokens_charged_total",
			Help:      "Tokens spent on capability changes.",
		}, []string{"domain"}),
	}
	m.registry.MustRegister(m.logins, m.capChanges, m.tokensCharged)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Login(mode, outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(mode, outcome).Inc()
}

// CapabilityChange counts one ledger outcome and adds charged to the spent
// tokens of domain.
func (m *Metrics) CapabilityChange(domain, outcome string, charged int) {
	if m == nil {
		return
	}
	m.capChanges.WithLabelValues(domain, outcome).Inc()
	if charged > 0 {
		m.tokensCharged.WithLabelValues(domain).Add(float64(charged))
	}
}
