package gateway

// MetricsRecorder receives gateway lifecycle events for observability.
// Defined here so the gateway records events without depending on any
// particular metrics backend; github.com/localrivet/mcp-gateway/gateway/metrics
// implements it on top of Prometheus. (The gateway's only Prometheus import
// is promhttp, for the optional Config.MetricsPath scrape endpoint.)
type MetricsRecorder interface {
	SessionOpened()
	SessionClosed()
	MessageForwarded(direction string)
	FactoryFailed()
}

// noopRecorder is used whenever Config.Metrics is nil, so call sites never
// need a nil check.
type noopRecorder struct{}

func (noopRecorder) SessionOpened()            {}
func (noopRecorder) SessionClosed()            {}
func (noopRecorder) MessageForwarded(_ string) {}
func (noopRecorder) FactoryFailed()            {}
