package runner

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cat echoes stdin lines to stdout, which is exactly the shape of a
// newline-delimited JSON-RPC child.
func startCat(t *testing.T, ctx context.Context) *childTransport {
	t.Helper()
	ct, err := startChildProcess(ctx, "cat", nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ct.Close() })
	return ct
}

func TestChildTransportRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ct := startCat(t, ctx)

	msg := []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	require.NoError(t, ct.Send(ctx, msg))

	got, err := ct.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestChildTransportPreservesOrder(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ct := startCat(t, ctx)

	msgs := [][]byte{
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"a"}`),
		[]byte(`{"jsonrpc":"2.0","id":2,"method":"b"}`),
		[]byte(`{"jsonrpc":"2.0","id":3,"method":"c"}`),
	}
	for _, m := range msgs {
		require.NoError(t, ct.Send(ctx, m))
	}
	for _, want := range msgs {
		got, err := ct.Receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestChildTransportEnv(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ct, err := startChildProcess(ctx, "sh", []string{"-c", `echo "$GATEWAY_TEST_VALUE"`},
		map[string]string{"GATEWAY_TEST_VALUE": "from-env"})
	require.NoError(t, err)
	t.Cleanup(func() { ct.Close() })

	got, err := ct.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("from-env"), got)
}

func TestChildTransportEOFOnExit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ct, err := startChildProcess(ctx, "sh", []string{"-c", "echo hi"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ct.Close() })

	got, err := ct.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), got)

	// The child has exited; the next Receive must report the stream's end
	// rather than hang.
	_, err = ct.Receive(ctx)
	require.Error(t, err)
	if err != io.EOF {
		assert.Contains(t, err.Error(), "closed")
	}
}

func TestChildTransportCloseIdempotent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ct := startCat(t, ctx)

	require.NoError(t, ct.Close())
	require.NoError(t, ct.Close())
	assert.True(t, ct.IsClosed())

	err := ct.Send(ctx, []byte(`{}`))
	require.Error(t, err)
}

func TestChildTransportContextCancelStopsChild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ct := startCat(t, ctx)

	cancel()

	require.Eventually(t, ct.IsClosed, 2*time.Second, 10*time.Millisecond,
		"cancelling the spawn context must close the transport")
}

func TestChildTransportSkipsBlankLines(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ct, err := startChildProcess(ctx, "sh", []string{"-c", `printf '\n\n{"jsonrpc":"2.0"}\n'`}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ct.Close() })

	got, err := ct.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"jsonrpc":"2.0"}`), got)
}

func TestFactorySpawnsFreshProcessPerCall(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	factory := newChildProcessFactory("cat", nil, nil)

	first, err := factory(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := factory(ctx)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Send(ctx, []byte(`{"id":1}`)))
	require.NoError(t, second.Send(ctx, []byte(`{"id":2}`)))

	got1, err := first.Receive(ctx)
	require.NoError(t, err)
	got2, err := second.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), got1)
	assert.Equal(t, []byte(`{"id":2}`), got2)
}

func TestFactorySpawnErrorSurfaces(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	factory := newChildProcessFactory("definitely-not-a-real-binary-xyz", nil, nil)
	_, err := factory(ctx)
	require.Error(t, err)
}
