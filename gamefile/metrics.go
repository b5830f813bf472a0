package gamefile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "citysave"
	subsystem = "gamefile"
)

// metrics are per-engine collectors. A nil *metrics records nothing.
type metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	fileBytes  *prometheus.HistogramVec
	fallbacks  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Load and save operations. Broken down by operation and result.",
			},
			[]string{"op", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_duration_seconds",
				Help:      "Duration of load and save operations.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"op"},
		),
		fileBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "file_bytes",
				Help:      "Bytes read or written per operation.",
				Buckets:   prometheus.ExponentialBuckets(64*1024, 2, 8),
			},
			[]string{"op"},
		),
		fallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chunk_fallbacks_total",
				Help:      "Compressed pieces stored raw behind the sentinel length.",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration, m.fileBytes, m.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *metrics) observe(op string, start time.Time, bytes int64, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err == nil && bytes > 0 {
		m.fileBytes.WithLabelValues(op).Observe(float64(bytes))
	}
}

func (m *metrics) fallback(n int) {
	if m == nil || n == 0 {
		return
	}
	m.fallbacks.Add(float64(n))
}
