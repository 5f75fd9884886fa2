// Package cli implements the mcp-gateway command-line interface using
// Cobra: "serve" to run the bridge, "version" to print the build version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-gateway",
	Short: "mcp-gateway bridges a stdio MCP server to SSE clients",
	Long: `mcp-gateway spawns an MCP server as a child process and exposes it
to HTTP/SSE clients, opening one child process per SSE session and
forwarding opaque JSON-RPC messages between them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
