// Package main is the mcp-gateway binary: it spawns a stdio MCP server per
// SSE session and bridges the two.
package main

import "github.com/localrivet/mcp-gateway/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
