package observability

import (
	"net/http"

	"github.com/aretw0/sprig/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by store lifecycle hooks.
type Metrics struct {
	Dispatches  *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Subscribers *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses a fresh private registry.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprig_dispatch_total",
				Help: "Total number of dispatched actions",
			},
			[]string{"store", "kind"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sprig_dispatch_errors_total",
				Help: "Total number of actions rejected by the reducer",
			},
			[]string{"store", "kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sprig_dispatch_duration_seconds",
				Help:    "Duration of dispatch, including the notification pass",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"store", "kind"},
		),
		Subscribers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sprig_subscribers",
				Help: "Number of registered subscribers",
			},
			[]string{"store"},
		),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.Dispatches, m.Errors, m.Duration, m.Subscribers} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			m.Dispatches.WithLabelValues(e.Store, e.Kind).Inc()
			m.Duration.WithLabelValues(e.Store, e.Kind).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.Errors.WithLabelValues(e.Store, e.Kind).Inc()
			}
		},
		OnSubscribe: func(e *domain.SubscriptionEvent) {
			m.Subscribers.WithLabelValues(e.Store).Set(float64(e.Active))
		},
		OnUnsubscribe: func(e *domain.SubscriptionEvent) {
			m.Subscribers.WithLabelValues(e.Store).Set(float64(e.Active))
		},
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
