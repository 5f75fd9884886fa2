package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/localrivet/mcp-gateway/logx"
)

// transportQueueCapacity bounds the queue of newly opened
// SessionTransports waiting for the forwarder dispatcher to pick them up.
// Production is gated by human-scale SSE connection rates and consumption
// is prompt, so a full buffer is a sign the dispatcher has stopped, not of
// normal backpressure; handleSSE treats it as ErrQueueDisconnected.
const transportQueueCapacity = 4096

// Gateway owns the HTTP listener, the SessionRegistry, the queue of newly
// created SessionTransports awaiting a Forwarder, and a root context whose
// cancellation tears the whole gateway down. Multiple Gateways can coexist
// in one process; there is no package-level shared state.
type Gateway struct {
	cfg        Config
	registry   *Registry
	transports chan *SessionTransport
	metrics    MetricsRecorder
	logger     logx.Logger

	ctx    context.Context
	cancel context.CancelFunc

	httpServer *http.Server
	addr       net.Addr
}

// New builds a Gateway's state and HTTP routes but does not bind a
// listener. parentCtx is the root of the gateway's cancellation tree; pass
// context.Background() for a gateway that only stops via Shutdown.
func New(parentCtx context.Context, cfg Config, logger logx.Logger) (*Gateway, http.Handler) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopRecorder{}
	}

	ctx, cancel := context.WithCancel(parentCtx)
	g := &Gateway{
		cfg:        cfg,
		registry:   NewRegistry(),
		transports: make(chan *SessionTransport, transportQueueCapacity),
		metrics:    metrics,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
	return g, g.router()
}

// Serve binds bind using the default paths and keep-alive interval,
// spawns the accept loop, and returns the Gateway handle. It does not
// start forwarding; call Forward with a TransportFactory once a Runner is
// ready.
func Serve(ctx context.Context, bind string, logger logx.Logger) (*Gateway, error) {
	return ServeWithConfig(ctx, Config{Bind: bind}, logger)
}

// ServeWithConfig binds cfg.Bind, spawns the HTTP accept loop with graceful
// shutdown gated on ctx, and returns the Gateway handle.
func ServeWithConfig(ctx context.Context, cfg Config, logger logx.Logger) (*Gateway, error) {
	g, handler := New(ctx, cfg, logger)

	listener, err := net.Listen("tcp", cfg.Bind)
	if err != nil {
		g.cancel()
		return nil, fmt.Errorf("gateway: bind %s: %w", cfg.Bind, err)
	}

	g.httpServer = &http.Server{Handler: handler}
	g.addr = listener.Addr()

	go func() {
		<-g.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.httpServer.Shutdown(shutdownCtx); err != nil {
			g.logger.Warn("gateway: graceful shutdown error: %v", err)
		}
	}()

	go func() {
		if err := g.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error("gateway: server exited with error: %v", err)
		}
	}()

	g.logger.Info("gateway: listening on %s (sse=%s post=%s)", g.cfg.Bind, g.cfg.SSEPath, g.cfg.PostPath)
	return g, nil
}

// Shutdown cancels the gateway's root context, which stops the HTTP accept
// loop (after in-flight requests drain), tears down every active
// Forwarder, and ends every SSE body stream. Idempotent.
func (g *Gateway) Shutdown() {
	g.cancel()
}

// Done reports when the gateway's root context has been cancelled.
func (g *Gateway) Done() <-chan struct{} { return g.ctx.Done() }

// Addr returns the listener's resolved address, useful when Config.Bind
// requested an ephemeral port. Nil before ServeWithConfig has bound.
func (g *Gateway) Addr() net.Addr { return g.addr }

// SessionCount returns the number of currently live sessions. Intended for
// tests and health checks.
func (g *Gateway) SessionCount() int { return g.registry.Len() }
