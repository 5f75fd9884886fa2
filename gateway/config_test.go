package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Bind: "127.0.0.1:0"}.withDefaults()
	assert.Equal(t, "/sse", cfg.SSEPath)
	assert.Equal(t, "/message", cfg.PostPath)
	assert.Equal(t, 15*time.Second, cfg.SSEKeepAlive)
}

func TestConfigExplicitValuesKept(t *testing.T) {
	cfg := Config{
		SSEPath:      "/events",
		PostPath:     "/rpc",
		SSEKeepAlive: time.Second,
	}.withDefaults()
	assert.Equal(t, "/events", cfg.SSEPath)
	assert.Equal(t, "/rpc", cfg.PostPath)
	assert.Equal(t, time.Second, cfg.SSEKeepAlive)
}

func TestEndpointPrefix(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, "/message", cfg.endpointPrefix())

	cfg.PublicPrefix = "/mcp/message"
	assert.Equal(t, "/mcp/message", cfg.endpointPrefix())
}
