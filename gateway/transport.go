package gateway

import "context"

// ChildTransport is the bidirectional message conduit to one spawned MCP
// child process, as produced by a TransportFactory. The Forwarder depends
// on this interface alone, never on exec.Cmd.
type ChildTransport interface {
	// Send writes one JSON-RPC message to the child's stdin.
	Send(ctx context.Context, msg []byte) error

	// Receive blocks until one JSON-RPC message arrives on the child's
	// stdout, or ctx is done, or the child stream ends (io.EOF).
	Receive(ctx context.Context) ([]byte, error)

	// Close terminates the child process and releases its pipes.
	Close() error

	// IsClosed reports whether Close has completed.
	IsClosed() bool
}

// TransportFactory produces a fresh ChildTransport on demand, one per SSE
// session, never shared across sessions. It is the single seam through
// which a Runner (js/bunx, python/uvx, ...) plugs into the gateway; the
// gateway core never spawns a process itself. Argument and environment
// composition, and translating spawn failures into plain errors, are the
// factory's responsibility.
type TransportFactory func(ctx context.Context) (ChildTransport, error)
