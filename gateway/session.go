package gateway

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// newSessionID mints a fresh, opaque session identifier, a version-4 UUID.
// Uniqueness across live sessions follows from the generator's collision
// probability, not from any check against the registry.
func newSessionID() string {
	return uuid.NewString()
}

// SessionTransport is the duplex endpoint for one SSE session: an inbound
// half fed by the POST handler and drained by the Forwarder, and an outbound
// half fed by the Forwarder and drained by the SSE response body.
//
// It holds a non-owning back-reference to the Registry so it can
// self-deregister on close; the Registry itself is owned by the Gateway.
type SessionTransport struct {
	id       string
	inbound  chan json.RawMessage // client -> server; Forwarder reads, POST handler writes
	outbound chan json.RawMessage // server -> client; Forwarder writes, SSE body reads

	registry *Registry

	closeOnce sync.Once
	done      chan struct{}
}

const channelCapacity = 64

// newSessionTransport creates the channels for a new session and wires them
// into a SessionTransport, but does not register it: insertion into the
// Registry is the caller's responsibility, and the SSE handler registers
// the inbound channel before any streaming begins.
func newSessionTransport(id string, registry *Registry) (*SessionTransport, chan json.RawMessage) {
	inbound := make(chan json.RawMessage, channelCapacity)
	outbound := make(chan json.RawMessage, channelCapacity)
	st := &SessionTransport{
		id:       id,
		inbound:  inbound,
		outbound: outbound,
		registry: registry,
		done:     make(chan struct{}),
	}
	return st, inbound
}

// ID returns the session's identifier.
func (s *SessionTransport) ID() string { return s.id }

// Done returns a channel closed once the session has been torn down, for
// callers (the Forwarder) that need to stop promptly on either side ending.
func (s *SessionTransport) Done() <-chan struct{} { return s.done }

// Inbound returns the receive side of the client->server channel.
func (s *SessionTransport) Inbound() <-chan json.RawMessage { return s.inbound }

// Outbound returns the send side of the server->client channel.
func (s *SessionTransport) Outbound() chan<- json.RawMessage { return s.outbound }

// outboundReceiver exposes the receive side for the SSE body writer; kept
// distinct from Outbound so producers and the single consumer can't be
// confused by callers outside this package.
func (s *SessionTransport) outboundReceiver() <-chan json.RawMessage { return s.outbound }

// Close tears the session down: it is idempotent (guarded by sync.Once),
// removes the session from the Registry, and closes Done() so any Forwarder
// racing on it exits at the next select. Safe to call from multiple
// goroutines (the SSE cleanup task and the Forwarder on a send error both
// may call it).
func (s *SessionTransport) Close() {
	s.closeOnce.Do(func() {
		s.registry.remove(s.id)
		close(s.inbound)
		close(s.done)
	})
}
