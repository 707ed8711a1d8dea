package hashmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is an Observer exporting table activity to Prometheus.
type Metrics struct {
	ops      *prometheus.CounterVec
	probes   *prometheus.HistogramVec
	resizes  *prometheus.CounterVec
	capacity prometheus.Gauge
	count    prometheus.Gauge
}

// NewMetrics registers the table collectors on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		ops: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashmap",
			Name:      "operations_total",
			Help:      "Inserts, searches and deletes by outcome.",
		}, []string{"op", "outcome"}),
		probes: promauto.With(registerer).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashmap",
			Name:      "probe_length",
			Help:      "Slots examined per operation.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16, 32},
		}, []string{"op"}),
		resizes: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashmap",
			Name:      "resizes_total",
			Help:      "Slot array rebuilds by direction.",
		}, []string{"direction"}),
		capacity: promauto.With(registerer).NewGauge(prometheus.GaugeOpts{
			Namespace: "hashmap",
			Name:      "capacity_slots",
			Help:      "Length of the slot array.",
		}),
		count: promauto.With(registerer).NewGauge(prometheus.GaugeOpts{
			Namespace: "hashmap",
			Name:      "entries",
			Help:      "Number of stored keys.",
		}),
	}
}

func (m *Metrics) Observe(op string, outcome Outcome, attempts int) {
	m.ops.WithLabelValues(op, string(outcome)).Inc()
	m.probes.WithLabelValues(op).Observe(float64(attempts))
}

func (m *Metrics) Resized(dir ResizeDirection, _, _ int) {
	m.resizes.WithLabelValues(string(dir)).Inc()
}

func (m *Metrics) Sized(capacity, count int) {
	m.capacity.Set(float64(capacity))
	m.count.Set(float64(count))
}
