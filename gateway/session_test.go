package gateway

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newSessionID()
		require.Len(t, id, 36)
		require.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}

func TestSessionTransportCloseDeregisters(t *testing.T) {
	reg := NewRegistry()
	st, inbound := newSessionTransport("s1", reg)
	reg.insert("s1", inbound)
	require.Equal(t, 1, reg.Len())

	st.Close()

	assert.Equal(t, 0, reg.Len())
	select {
	case <-st.Done():
	default:
		t.Fatal("Done() should be closed after Close")
	}
	_, open := <-st.Inbound()
	assert.False(t, open, "inbound channel should be closed")
}

func TestSessionTransportCloseIdempotent(t *testing.T) {
	reg := NewRegistry()
	st, inbound := newSessionTransport("s1", reg)
	reg.insert("s1", inbound)

	// Both the SSE handler's teardown and the Forwarder may call Close;
	// racing them must neither panic nor double-remove observably.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Close()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, reg.Len())
}

func TestDeliverInboundAfterClose(t *testing.T) {
	reg := NewRegistry()
	st, inbound := newSessionTransport("s1", reg)
	reg.insert("s1", inbound)

	require.True(t, deliverInbound(inbound, json.RawMessage(`{"jsonrpc":"2.0"}`)))

	st.Close()
	assert.False(t, deliverInbound(inbound, json.RawMessage(`{"jsonrpc":"2.0"}`)),
		"sending into a closed session must report failure, not panic")
}
