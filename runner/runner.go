// Package runner supplies TransportFactory implementations that spawn an
// MCP server as a child process of a particular language runtime (Node via
// bun, Python via uv), ensuring the runtime is installed first.
package runner

import (
	"context"

	"github.com/localrivet/mcp-gateway/gateway"
)

// Spec describes the child process a Runner should spawn: a package name
// resolvable by the runtime's package runner (npx-style for bunx, uvx for
// Python), positional arguments appended after it, and extra environment
// variables merged over the current process's environment.
type Spec struct {
	Package string
	Args    []string
	Env     map[string]string
}

// Runner knows how to verify, install, and spawn one language runtime's MCP
// child processes. Factory produces a gateway.TransportFactory bound to a
// Spec, ready to hand to Gateway.Forward.
type Runner interface {
	// Name identifies the runtime, e.g. "js" or "python".
	Name() string

	// Check reports whether the runtime's toolchain is already installed.
	Check(ctx context.Context) (bool, error)

	// Install attempts to install the runtime's toolchain. Ensure calls it
	// only when Check reports false or fails.
	Install(ctx context.Context) error

	// Factory returns a TransportFactory that spawns spec as a child
	// process each time it's invoked. It does not call Check/Install;
	// use Ensure for that.
	Factory(spec Spec) gateway.TransportFactory
}

// Ensure runs Check and, if the runtime isn't present, Install followed by
// a second Check. Returns gateway.ErrRuntimeUnavailable if the runtime is
// still missing afterward.
func Ensure(ctx context.Context, r Runner) error {
	ok, err := r.Check(ctx)
	if err == nil && ok {
		return nil
	}
	if err := r.Install(ctx); err != nil {
		return err
	}
	ok, err = r.Check(ctx)
	if err != nil || !ok {
		return gateway.ErrRuntimeUnavailable
	}
	return nil
}

// Registry maps runtime names to their Runner, so gateway.toml's [runner]
// kind can select one by name.
type Registry struct {
	runners map[string]Runner
}

// NewRegistry builds a Registry preloaded with the given runners, keyed by
// their Name().
func NewRegistry(runners ...Runner) *Registry {
	reg := &Registry{runners: make(map[string]Runner, len(runners))}
	for _, r := range runners {
		reg.runners[r.Name()] = r
	}
	return reg
}

// Get looks up a Runner by name.
func (reg *Registry) Get(name string) (Runner, bool) {
	r, ok := reg.runners[name]
	return r, ok
}

// Default returns a Registry preloaded with every built-in Runner (js,
// python).
func Default() *Registry {
	return NewRegistry(JSRunner{}, PythonRunner{})
}
