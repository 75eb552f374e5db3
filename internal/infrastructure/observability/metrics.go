package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pcbuild"

// Metrics holds the engine's prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	RemoteCalls    *prometheus.CounterVec
	RemoteLatency  *prometheus.HistogramVec
	Verdicts       *prometheus.CounterVec
	StaleResponses *prometheus.CounterVec
	Degraded       *prometheus.CounterVec
	Mutations      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		RemoteCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "calls_total",
				Help:      "Calls to the remote configuration service by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		RemoteLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "duration_seconds",
				Help:      "Remote configuration service call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Verdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "compatibility",
				Name:      "verdicts_total",
				Help:      "Compatibility verdicts applied by overall status",
			},
			[]string{"status"},
		),
		StaleResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "stale_responses_total",
				Help:      "Responses discarded because a newer one was already applied",
			},
			[]string{"kind"},
		),
		Degraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "degraded_total",
				Help:      "Failures absorbed by silent-degrade policies",
			},
			[]string{"operation"},
		),
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "configuration",
				Name:      "mutations_total",
				Help:      "Configuration mutations by operation and category",
			},
			[]string{"operation", "category"},
		),
	}
}

// Register adds every collector to reg. Already registered collectors are
// tolerated so tests can share the default registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{m.RemoteCalls, m.RemoteLatency, m.Verdicts, m.StaleResponses, m.Degraded, m.Mutations} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveRemote(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.RemoteCalls.WithLabelValues(operation, outcome).Inc()
	m.RemoteLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveVerdict(status string) {
	if m == nil {
		return
	}
	m.Verdicts.WithLabelValues(status).Inc()
}

func (m *Metrics) StaleResponse(kind string) {
	if m == nil {
		return
	}
	m.StaleResponses.WithLabelValues(kind).Inc()
}

func (m *Metrics) DegradedCall(operation string) {
	if m == nil {
		return
	}
	m.Degraded.WithLabelValues(operation).Inc()
}

func (m *Metrics) Mutation(operation, category string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(operation, category).Inc()
}
