package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// router builds the chi.Router carrying the two gateway routes; both
// handlers close over the same Gateway.
func (g *Gateway) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get(g.cfg.SSEPath, g.handleSSE)
	r.Post(g.cfg.PostPath, g.handlePost)

	if g.cfg.MetricsPath != "" && g.cfg.Metrics != nil {
		r.Handle(g.cfg.MetricsPath, promhttp.Handler())
	}
	return r
}

// handleSSE opens a new session: it mints a SessionID, wires up a
// SessionTransport, registers it, hands it to the forwarder dispatcher, and
// streams an "endpoint" event followed by "message" events drained from the
// session's outbound channel.
func (g *Gateway) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	id := newSessionID()
	st, inbound := newSessionTransport(id, g.registry)
	g.registry.insert(id, inbound)

	select {
	case g.transports <- st:
	default:
		// A full transport queue means the dispatcher loop is gone,
		// i.e. the server is shutting down.
		g.registry.remove(id)
		http.Error(w, ErrQueueDisconnected.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: endpoint\ndata: %s?sessionId=%s\n\n", g.cfg.endpointPrefix(), id)
	flusher.Flush()

	g.metrics.SessionOpened()
	g.logger.Info("gateway: session %s opened from %s", id, r.RemoteAddr)

	defer func() {
		st.Close()
		g.metrics.SessionClosed()
		g.logger.Info("gateway: session %s closed", id)
	}()

	keepAlive := time.NewTicker(g.cfg.SSEKeepAlive)
	defer keepAlive.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-g.ctx.Done():
			return
		case <-st.Done():
			return
		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case msg, open := <-st.outboundReceiver():
			if !open {
				return
			}
			data, err := json.Marshal(json.RawMessage(msg))
			if err != nil {
				g.logger.Error("gateway: session %s serialization failed: %v", id, err)
				return
			}
			if _, err := fmt.Fprintf(w, "event: message\ndata: %s\n\n", data); err != nil {
				g.logger.Warn("gateway: session %s write failed: %v", id, err)
				return
			}
			flusher.Flush()
			keepAlive.Reset(g.cfg.SSEKeepAlive)
		}
	}
}

// The query parameter name is camelCase on the wire: "sessionId".
const sessionIDParam = "sessionId"

// handlePost delivers one client->server JSON-RPC message into the named
// session's inbound channel.
func (g *Gateway) handlePost(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(sessionIDParam)

	// Status-only responses on this route; the status code is the payload.
	inbound, ok := g.registry.get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var msg json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if deliverInbound(inbound, msg) {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	w.WriteHeader(http.StatusGone)
}

// deliverInbound sends msg on inbound, reporting false in place of Go's
// send-on-closed-channel panic: a closed inbound channel means exactly
// "session receiver closed", HTTP 410.
func deliverInbound(inbound chan json.RawMessage, msg json.RawMessage) (sent bool) {
	defer func() {
		if recover() != nil {
			sent = false
		}
	}()
	inbound <- msg
	return true
}
