package runner

import (
	"context"

	"github.com/localrivet/mcp-gateway/gateway"
)

// JSRunner spawns MCP servers published as npm packages, using bun's
// package runner (bunx) rather than npm/npx.
type JSRunner struct{}

func (JSRunner) Name() string { return "js" }

func (JSRunner) Check(ctx context.Context) (bool, error) {
	return commandSucceeds(ctx, "bun", "--version")
}

func (JSRunner) Install(ctx context.Context) error {
	return runShell(ctx, "curl -fsSL https://bun.sh/install | bash")
}

// Factory returns a TransportFactory that runs `bunx -y <package> --
// <args...>` with spec.Env merged over the ambient environment.
func (JSRunner) Factory(spec Spec) gateway.TransportFactory {
	args := append([]string{"-y", spec.Package, "--"}, spec.Args...)
	return newChildProcessFactory("bunx", args, spec.Env)
}
