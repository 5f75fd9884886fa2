package runner

import (
	"context"
	"os/exec"
)

// commandSucceeds runs name with args, discarding its output, and reports
// whether it exited zero. Used for "--version"-style toolchain presence
// checks.
func commandSucceeds(ctx context.Context, name string, args ...string) (bool, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return false, err
}

// runShell runs script through "sh -c". The toolchain installers are
// published as curl-pipe-to-shell one-liners.
func runShell(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	return cmd.Run()
}
