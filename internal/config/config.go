// Package config loads gateway.toml over built-in defaults. The CLI
// applies its flag overrides to the result and builds the gateway.Config
// and runner.Spec the server needs to start from it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config mirrors gateway.toml's shape: a [gateway] table for the HTTP
// surface and a [runner] table selecting which child process to spawn.
type Config struct {
	Gateway GatewayConfig `toml:"gateway"`
	Runner  RunnerConfig  `toml:"runner"`
	Metrics MetricsConfig `toml:"metrics"`
}

// GatewayConfig controls the SSE/HTTP surface.
type GatewayConfig struct {
	Bind         string `toml:"bind"`
	SSEPath      string `toml:"sse_path"`
	PostPath     string `toml:"post_path"`
	SSEKeepAlive string `toml:"sse_keep_alive"`
	PublicPrefix string `toml:"public_prefix"`
}

// RunnerConfig selects the language runtime and package to spawn per
// session.
type RunnerConfig struct {
	Kind    string            `toml:"kind"` // "js" | "python"
	Package string            `toml:"package"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env"`
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns a Config with every field at its documented default,
// matching gateway.Config's own defaults so a config file that omits a
// field behaves identically to code built without one.
func Default() Config {
	return Config{
		Gateway: GatewayConfig{
			Bind:         "127.0.0.1:8090",
			SSEPath:      "/sse",
			PostPath:     "/message",
			SSEKeepAlive: "15s",
		},
		Runner: RunnerConfig{
			Kind: "js",
			Args: []string{},
			Env:  map[string]string{},
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}

// Load reads path, overlaying it onto Default(). A missing file is not an
// error: the gateway runs on defaults plus whatever flags the caller
// applies afterward, mirroring daemon.LoadConfig's "no config file yet"
// fallback.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// KeepAlive parses GatewayConfig.SSEKeepAlive, falling back to 15s on an
// empty or malformed value rather than failing startup over it.
func (c GatewayConfig) KeepAlive() time.Duration {
	if c.SSEKeepAlive == "" {
		return 15 * time.Second
	}
	d, err := time.ParseDuration(c.SSEKeepAlive)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
