// Package compose provides low-level integration with Docker Compose via the
// docker compose plugin or the standalone docker-compose binary.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// MonitoringProfile is the compose profile holding the metrics collector and dashboard.
const MonitoringProfile = "monitoring"

// Client wraps compose execution against a single compose definition file.
type Client struct {
	// Command is the argv prefix resolved by DetectCommand,
	// e.g. ["docker", "compose"] or ["docker-compose"].
	Command []string
	// File is the compose definition passed via -f.
	File string
	// Dir is the working directory for compose invocations.
	Dir string
	// Profiles are exported through COMPOSE_PROFILES before invocation.
	Profiles []string
	// Stdout and Stderr receive the tool's output; nil falls back to the
	// process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Runner executes the assembled command; tests replace it.
	Runner func(cmd *exec.Cmd) error
}

// NewClient constructs a compose client for the given definition file rooted at dir.
func NewClient(command []string, file, dir string) *Client {
	return &Client{Command: command, File: file, Dir: dir}
}

// DetectCommand resolves how compose is invoked on this host. The docker
// compose plugin is preferred; the standalone docker-compose binary is the
// fallback. lookPath and probe default to exec.LookPath and running the
// command when nil.
func DetectCommand(ctx context.Context, lookPath func(string) (string, error), probe func(ctx context.Context, name string, args ...string) error) ([]string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if probe == nil {
		probe = func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		}
	}

	if _, err := lookPath("docker"); err == nil {
		if probe(ctx, "docker", "compose", "version") == nil {
			return []string{"docker", "compose"}, nil
		}
	}
	if _, err := lookPath("docker-compose"); err == nil {
		return []string{"docker-compose"}, nil
	}
	return nil, errors.New("docker compose plugin or docker-compose binary is required")
}

// Build builds all images for the stack, optionally bypassing the layer cache.
func (c *Client) Build(ctx context.Context, noCache bool) error {
	args := []string{"build"}
	if noCache {
		args = append(args, "--no-cache")
	}
	return c.run(ctx, args...)
}

// Up starts the stack in detached mode.
func (c *Client) Up(ctx context.Context) error {
	return c.run(ctx, "up", "-d")
}

// Down stops and removes the stack's containers and networks.
func (c *Client) Down(ctx context.Context) error {
	return c.run(ctx, "down")
}

// PS prints the container status table for the stack.
func (c *Client) PS(ctx context.Context) error {
	return c.run(ctx, "ps")
}

func (c *Client) run(ctx context.Context, args ...string) error {
	if len(c.Command) == 0 {
		return errors.New("compose command is not resolved")
	}

	argv := append([]string{}, c.Command...)
	if c.File != "" {
		argv = append(argv, "-f", c.File)
	}
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if len(c.Profiles) > 0 {
		env := os.Environ()
		env = append(env, "COMPOSE_PROFILES="+strings.Join(c.Profiles, ","))
		cmd.Env = env
	}

	run := c.Runner
	if run == nil {
		run = func(cmd *exec.Cmd) error { return cmd.Run() }
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("%s %v failed: %w", strings.Join(c.Command, " "), args, err)
	}
	return nil
}
