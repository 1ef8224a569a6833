// Package checks implements the host prerequisite checks ragctl runs before
// provisioning and starting the stack.
package checks

import (
	"context"
	"fmt"
	"os/exec"
)

// Host bundles the exec seams the checks go through so tests can substitute fakes.
type Host struct {
	LookPath func(file string) (string, error)
	RunCmd   func(ctx context.Context, name string, args ...string) error
}

// DefaultHost returns a Host backed by the real exec package.
func DefaultHost() Host {
	return Host{
		LookPath: exec.LookPath,
		RunCmd: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// DockerInstalled verifies the docker binary is on PATH.
func (h Host) DockerInstalled() error {
	if _, err := h.LookPath("docker"); err != nil {
		return fmt.Errorf("docker binary not found in PATH: %w", err)
	}
	return nil
}

// DaemonReachable verifies the container daemon answers docker info.
func (h Host) DaemonReachable(ctx context.Context) error {
	if err := h.RunCmd(ctx, "docker", "info"); err != nil {
		return fmt.Errorf("docker daemon is not reachable: %w", err)
	}
	return nil
}
