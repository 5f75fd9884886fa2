package gateway

import "time"

// DefaultSSEKeepAlive is the idle interval after which the SSE handler
// emits a keep-alive comment.
const DefaultSSEKeepAlive = 15 * time.Second

const (
	// DefaultSSEPath is the route for opening a new SSE session.
	DefaultSSEPath = "/sse"
	// DefaultPostPath is the route (and endpoint-event prefix) for
	// delivering client messages.
	DefaultPostPath = "/message"
)

// Config is the gateway's immutable configuration, owned by the Server.
type Config struct {
	// Bind is the socket address to listen on, e.g. "127.0.0.1:8090".
	Bind string

	// SSEPath is the URL path for the SSE GET route. Defaults to "/sse".
	SSEPath string

	// PostPath is the URL path for the POST route, and the prefix emitted
	// in the "endpoint" SSE event. Defaults to "/message".
	PostPath string

	// SSEKeepAlive is the idle keep-alive interval. Zero means
	// DefaultSSEKeepAlive.
	SSEKeepAlive time.Duration

	// PublicPrefix, when set, replaces PostPath in the "endpoint" event's
	// data line only, for gateways embedded under a reverse-proxy prefix
	// where PostPath itself wouldn't be externally reachable. Leaving it
	// empty preserves the default: the event carries exactly
	// "{post_path}?sessionId={id}".
	PublicPrefix string

	// Metrics, when non-nil, receives session/message counters. A nil
	// value disables metrics entirely rather than panicking.
	Metrics MetricsRecorder

	// MetricsPath, when non-empty and Metrics is set, mounts a Prometheus
	// scrape endpoint at this path (typically "/metrics", served by
	// promhttp.Handler from the default Prometheus registry, where
	// gateway/metrics registers its collectors).
	MetricsPath string
}

// withDefaults returns a copy of cfg with zero-valued fields replaced by
// their documented defaults.
func (cfg Config) withDefaults() Config {
	if cfg.SSEPath == "" {
		cfg.SSEPath = DefaultSSEPath
	}
	if cfg.PostPath == "" {
		cfg.PostPath = DefaultPostPath
	}
	if cfg.SSEKeepAlive <= 0 {
		cfg.SSEKeepAlive = DefaultSSEKeepAlive
	}
	return cfg
}

// endpointPrefix is the prefix stamped into the "endpoint" SSE event.
func (cfg Config) endpointPrefix() string {
	if cfg.PublicPrefix != "" {
		return cfg.PublicPrefix
	}
	return cfg.PostPath
}
