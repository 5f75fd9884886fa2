package runner

import (
	"context"

	"github.com/localrivet/mcp-gateway/gateway"
)

// PythonRunner spawns MCP servers published as Python packages, using uv's
// package runner (uvx).
type PythonRunner struct{}

func (PythonRunner) Name() string { return "python" }

func (PythonRunner) Check(ctx context.Context) (bool, error) {
	return commandSucceeds(ctx, "uv", "--version")
}

func (PythonRunner) Install(ctx context.Context) error {
	if err := runShell(ctx, "curl -LsSf https://astral.sh/uv/install.sh | sh"); err != nil {
		return err
	}
	ok, err := commandSucceeds(ctx, "uv", "python", "install")
	if err != nil {
		return err
	}
	if !ok {
		return gateway.ErrRuntimeUnavailable
	}
	return nil
}

// Factory returns a TransportFactory that runs `uvx run <package> --
// <args...>` with spec.Env merged over the ambient environment.
func (PythonRunner) Factory(spec Spec) gateway.TransportFactory {
	args := append([]string{"run", spec.Package, "--"}, spec.Args...)
	return newChildProcessFactory("uvx", args, spec.Env)
}
