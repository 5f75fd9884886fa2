// Package metrics provides the Prometheus-backed implementation of
// gateway.MetricsRecorder: session and message counters for the SSE
// gateway, registered against the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SessionsActive tracks the number of currently open SSE sessions.
var SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "mcpgateway",
	Name:      "sessions_active",
	Help:      "Number of currently open SSE sessions.",
})

// SessionsOpened tracks the total number of SSE sessions ever opened.
var SessionsOpened = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mcpgateway",
	Name:      "sessions_opened_total",
	Help:      "Total SSE sessions opened.",
})

// MessagesForwarded tracks forwarded JSON-RPC messages by direction.
var MessagesForwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mcpgateway",
	Name:      "messages_forwarded_total",
	Help:      "Total JSON-RPC messages forwarded, by direction.",
}, []string{"direction"})

// FactoryFailures tracks TransportFactory failures, i.e. child processes
// that never started.
var FactoryFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mcpgateway",
	Name:      "factory_failures_total",
	Help:      "Total TransportFactory failures.",
})

// Recorder implements gateway.MetricsRecorder against the package-level
// Prometheus collectors above. It holds no state of its own; every method
// is a thin adapter, so the gateway package records events through its
// MetricsRecorder interface and never touches these collectors directly.
type Recorder struct{}

// NewRecorder returns a Recorder. Safe to share across Gateways: the
// underlying collectors are process-global, matching how promauto
// registers against prometheus.DefaultRegisterer.
func NewRecorder() Recorder { return Recorder{} }

func (Recorder) SessionOpened() {
	SessionsActive.Inc()
	SessionsOpened.Inc()
}

func (Recorder) SessionClosed() {
	SessionsActive.Dec()
}

func (Recorder) MessageForwarded(direction string) {
	MessagesForwarded.WithLabelValues(direction).Inc()
}

func (Recorder) FactoryFailed() {
	FactoryFailures.Inc()
}
