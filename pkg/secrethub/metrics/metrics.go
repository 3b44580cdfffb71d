// Package metrics exports Client call outcomes to Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// Result label values.
const (
	ResultOK          = "ok"
	ResultClosed      = "closed"
	ResultNativeError = "native_error"
	ResultError       = "error"
)

// Collector implements secrethub.Observer.
type Collector struct {
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
	OpenClients  prometheus.Gauge
}

var _ secrethub.Observer = (*Collector)(nil)

// NewCollector creates and registers the client metrics on reg.
// Returns nil if reg is nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		return nil
	}

	c := &Collector{
		CallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "secrethub",
			Subsystem: "client",
			Name:      "calls_total",
			Help:      "Total native calls by operation and result.",
		}, []string{"op", "result"}),
		CallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "secrethub",
			Subsystem: "client",
			Name:      "call_duration_seconds",
			Help:      "Duration of native calls that reached the library.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"op"}),
		OpenClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "secrethub",
			Subsystem: "client",
			Name:      "open_handles",
			Help:      "Native client handles created and not yet released.",
		}),
	}

	reg.MustRegister(c.CallsTotal, c.CallDuration, c.OpenClients)
	return c
}

// ObserveCall records one call. A nil Collector ignores it.
func (c *Collector) ObserveCall(op string, elapsed time.Duration, err error) {
	if c == nil {
		return
	}

	result := Result(err)
	c.CallsTotal.WithLabelValues(op, result).Inc()
	if result == ResultClosed {
		return
	}
	c.CallDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	switch {
	case op == native.OpNewClient && err == nil:
		c.OpenClients.Inc()
	case op == native.OpDeleteClient:
		c.OpenClients.Dec()
	}
}

// Result classifies err into a result label value.
func Result(err error) string {
	var nerr *secrethub.NativeError
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, secrethub.ErrClosed):
		return ResultClosed
	case errors.As(err, &nerr):
		return ResultNativeError
	default:
		return ResultError
	}
}
