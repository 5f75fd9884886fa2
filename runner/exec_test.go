package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSucceeds(t *testing.T) {
	ctx := context.Background()

	ok, err := commandSucceeds(ctx, "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = commandSucceeds(ctx, "sh", "-c", "exit 3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommandSucceedsMissingBinary(t *testing.T) {
	ok, err := commandSucceeds(context.Background(), "definitely-not-a-real-binary-xyz")
	require.Error(t, err)
	assert.False(t, ok)
}
