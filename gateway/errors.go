package gateway

import "errors"

// Error kinds surfaced by the gateway core. Per-session failures never
// propagate past the session: they are logged and the session's tasks end.
// A bind failure is the exception: ServeWithConfig returns it wrapped.
// Reconnection is the client's responsibility.
var (
	// ErrNoSuchSession names the failure of a POST that references an
	// unknown session id. handlePost answers it with a bare 404.
	ErrNoSuchSession = errors.New("gateway: no such session")

	// ErrSessionReceiverClosed names the failure of a POST that can't be
	// delivered because the session's inbound channel has no receiver
	// left. handlePost answers it with a bare 410.
	ErrSessionReceiverClosed = errors.New("gateway: session receiver closed")

	// ErrQueueDisconnected names the failure of the SSE handler to hand a
	// new SessionTransport to the forwarder dispatcher because its
	// receiver is gone, i.e. the server is shutting down. Its text is the
	// body of the resulting 500 response.
	ErrQueueDisconnected = errors.New("fail to send out transport, it seems server is closed")

	// ErrRuntimeUnavailable is returned by a Runner when the underlying
	// language toolchain (bun, uvx, ...) isn't installed and couldn't be
	// installed automatically.
	ErrRuntimeUnavailable = errors.New("gateway: runtime unavailable")
)
