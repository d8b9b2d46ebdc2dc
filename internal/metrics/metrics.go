// Package metrics exposes Prometheus collectors for authentication outcomes
// and session lifecycle. Each Metrics instance carries its own registry so
// independent servers (and tests) never collide on registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	// AuthAttempts counts authentication attempts by outcome.
	AuthAttempts *prometheus.CounterVec
	// SessionsSwept counts sessions removed by the background sweeper.
	SessionsSwept prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_auth_attempts_total",
			Help: "Authentication attempts by outcome.",
		}, []string{"outcome"}),
		SessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_auth_sessions_swept_total",
			Help: "Expired sessions removed by the background sweeper.",
		}),
	}
	m.registry.MustRegister(m.AuthAttempts, m.SessionsSwept)
	return m
}

// ObserveActiveSessions registers a gauge sampling the live session count.
func (m *Metrics) ObserveActiveSessions(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "admin_auth_active_sessions",
		Help: "Sessions currently held in the store.",
	}, func() float64 {
		return float64(count())
	}))
}

// Handler serves this instance's registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
