package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/localrivet/mcp-gateway/gateway"
	"github.com/localrivet/mcp-gateway/gateway/metrics"
	"github.com/localrivet/mcp-gateway/internal/config"
	"github.com/localrivet/mcp-gateway/logx"
	"github.com/localrivet/mcp-gateway/runner"
)

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to gateway.toml (defaults built in if omitted)")
	serveCmd.Flags().StringVar(&bindOverride, "bind", "", "Listen address, overrides [gateway].bind")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd)
}

var (
	configPath   string
	bindOverride string
	logLevel     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway and begin bridging SSE sessions to a child process",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if bindOverride != "" {
		cfg.Gateway.Bind = bindOverride
	}

	logger := logx.NewDefaultLogger()
	logx.SetLogLevelFromString(logger, logLevel)

	registry := runner.Default()
	r, ok := registry.Get(cfg.Runner.Kind)
	if !ok {
		return fmt.Errorf("cli: unknown runner kind %q", cfg.Runner.Kind)
	}

	rootCtx, stop := signalContext()
	defer stop()

	if err := runner.Ensure(rootCtx, r); err != nil {
		return fmt.Errorf("cli: %s runtime unavailable: %w", r.Name(), err)
	}

	factory := r.Factory(runner.Spec{
		Package: cfg.Runner.Package,
		Args:    cfg.Runner.Args,
		Env:     cfg.Runner.Env,
	})

	gwCfg := gateway.Config{
		Bind:         cfg.Gateway.Bind,
		SSEPath:      cfg.Gateway.SSEPath,
		PostPath:     cfg.Gateway.PostPath,
		SSEKeepAlive: cfg.Gateway.KeepAlive(),
		PublicPrefix: cfg.Gateway.PublicPrefix,
	}
	if cfg.Metrics.Enabled {
		gwCfg.Metrics = metrics.NewRecorder()
		gwCfg.MetricsPath = cfg.Metrics.Path
	}

	gw, err := gateway.ServeWithConfig(rootCtx, gwCfg, logger)
	if err != nil {
		return err
	}
	gw.Forward(factory)

	fmt.Printf("mcp-gateway serving on http://%s (sse=%s post=%s)\n", gw.Addr(), cfg.Gateway.SSEPath, cfg.Gateway.PostPath)
	if cfg.Metrics.Enabled {
		fmt.Printf("  metrics: http://%s%s\n", gw.Addr(), cfg.Metrics.Path)
	}

	<-gw.Done()
	return nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM, mirroring
// the graceful-shutdown trigger the rest of this codebase wires into its
// own long-running servers.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}
