package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
)

// Metrics exposes calculation counts and latencies to prometheus.
type Metrics struct {
	calculations *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewMetrics registers the calculator metrics with reg. Pass
// prometheus.DefaultRegisterer to publish on the default /metrics
// handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tancalc_calculations_total",
				Help: "Total number of calculations, labelled by outcome",
			},
			[]string{"outcome"},
		),
		// Series evaluation finishes in microseconds, far below the
		// default buckets.
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tancalc_calculation_duration_seconds",
			Help:    "Duration of single calculations",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
	}
	reg.MustRegister(m.calculations, m.duration)
	return m
}

// Hooks returns lifecycle hooks that feed the metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCalculate: func(_ context.Context, ev *domain.CalculationEvent) {
			m.calculations.WithLabelValues(string(ev.Outcome)).Inc()
			m.duration.Observe(ev.Duration.Seconds())
		},
	}
}
