package gateway

import "context"

// Forward starts the forwarder dispatcher: it drains newly opened
// SessionTransports from the transport queue and, for each, spawns a
// Forwarder that bridges it to a fresh child process obtained from
// factory. One call to Forward per Gateway; factory is invoked once per
// SSE session, never shared across sessions.
func (g *Gateway) Forward(factory TransportFactory) {
	go g.dispatch(factory)
}

func (g *Gateway) dispatch(factory TransportFactory) {
	for {
		select {
		case <-g.ctx.Done():
			return
		case st, ok := <-g.transports:
			if !ok {
				return
			}
			sessionCtx, cancel := context.WithCancel(g.ctx)
			go g.runForwarder(sessionCtx, cancel, st, factory)
		}
	}
}

// runForwarder bridges one session: obtain a child transport, pump
// messages between it and st in both directions, and tear everything down
// on the first error or cancellation in either direction.
//
// ChildTransport.Receive is a blocking call, so each direction gets its
// own goroutine; the two converge on a shared context and a shared
// first-error channel. Per-direction ordering (FIFO) is preserved by each
// goroutine reading its own channel/transport in a tight loop; no ordering
// is guaranteed across the two directions.
func (g *Gateway) runForwarder(ctx context.Context, cancel context.CancelFunc, st *SessionTransport, factory TransportFactory) {
	defer cancel()
	// Dropping both sides on exit: closing st ends the SSE body stream and
	// flips further POSTs for this session to 410/404, and closing the
	// child closes its stdin, inducing the child process to exit.
	defer st.Close()

	child, err := factory(ctx)
	if err != nil {
		g.logger.Error("gateway: transport factory failed for session %s: %v", st.ID(), err)
		g.metrics.FactoryFailed()
		return
	}
	defer child.Close()

	errCh := make(chan error, 2)
	go g.pumpChildToClient(ctx, child, st, errCh)
	go g.pumpClientToChild(ctx, child, st, errCh)

	select {
	case <-ctx.Done():
	case <-st.Done():
	case err := <-errCh:
		g.logger.Warn("gateway: session %s forwarder ending: %v", st.ID(), err)
	}
}

// pumpChildToClient forwards messages from the child process's stdout to
// the session's outbound (SSE) channel.
func (g *Gateway) pumpChildToClient(ctx context.Context, child ChildTransport, st *SessionTransport, errCh chan<- error) {
	for {
		msg, err := child.Receive(ctx)
		if err != nil {
			trySend(errCh, err)
			return
		}
		select {
		case st.Outbound() <- msg:
			g.metrics.MessageForwarded("child_to_client")
		case <-ctx.Done():
			return
		case <-st.Done():
			return
		}
	}
}

// pumpClientToChild forwards messages delivered via HTTP POST to the
// child process's stdin.
func (g *Gateway) pumpClientToChild(ctx context.Context, child ChildTransport, st *SessionTransport, errCh chan<- error) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-st.Done():
			return
		case msg, open := <-st.Inbound():
			if !open {
				return
			}
			if err := child.Send(ctx, msg); err != nil {
				trySend(errCh, err)
				return
			}
			g.metrics.MessageForwarded("client_to_child")
		}
	}
}

// trySend delivers err to errCh without blocking if a prior error from the
// other direction already claimed the one slot the outer select reads.
func trySend(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}
