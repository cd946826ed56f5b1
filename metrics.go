package equalheight

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts recalculation activity. A nil *Metrics records nothing.
type Metrics struct {
	recomputes     prometheus.Counter
	signals        *prometheus.CounterVec
	scrollbarFlips prometheus.Counter
	holders        prometheus.Gauge
	targets        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		recomputes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "equalheight",
			Name:      "recomputes_total",
			Help:      "Number of target table recomputations.",
		}),
		signals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "equalheight",
			Name:      "environment_signals_total",
			Help:      "Environment signals received, before debouncing.",
		}, []string{"kind"}),
		scrollbarFlips: f.NewCounter(prometheus.CounterOpts{
			Namespace: "equalheight",
			Name:      "scrollbar_flips_total",
			Help:      "Scrollbar visibility changes that forced another recalculation.",
		}),
		holders: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "equalheight",
			Name:      "holders",
			Help:      "Mounted holders at the last recompute.",
		}),
		targets: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "equalheight",
			Name:      "targets",
			Help:      "Rows in the target table at the last recompute.",
		}),
	}
}

func (m *Metrics) recomputed(holders, targets int) {
	if m == nil {
		return
	}
	m.recomputes.Inc()
	m.holders.Set(float64(holders))
	m.targets.Set(float64(targets))
}

func (m *Metrics) signaled(kind string) {
	if m == nil {
		return
	}
	m.signals.WithLabelValues(kind).Inc()
}

func (m *Metrics) scrollbarFlipped() {
	if m == nil {
		return
	}
	m.scrollbarFlips.Inc()
}
