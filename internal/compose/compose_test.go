package compose

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingClient(command []string, file string) (*Client, *[]*exec.Cmd) {
	var captured []*exec.Cmd
	c := NewClient(command, file, ".")
	c.Runner = func(cmd *exec.Cmd) error {
		captured = append(captured, cmd)
		return nil
	}
	return c, &captured
}

func TestBuild_NoCache(t *testing.T) {
	c, captured := newCapturingClient([]string{"docker", "compose"}, "docker-compose.yml")

	require.NoError(t, c.Build(context.Background(), true))
	require.Len(t, *captured, 1)
	assert.Equal(t, []string{"docker", "compose", "-f", "docker-compose.yml", "build", "--no-cache"}, (*captured)[0].Args)
}

func TestUp_StandaloneBinary(t *testing.T) {
	c, captured := newCapturingClient([]string{"docker-compose"}, "docker-compose.dev.yml")

	require.NoError(t, c.Up(context.Background()))
	require.Len(t, *captured, 1)
	assert.Equal(t, []string{"docker-compose", "-f", "docker-compose.dev.yml", "up", "-d"}, (*captured)[0].Args)
}

func TestUp_ExportsProfiles(t *testing.T) {
	c, captured := newCapturingClient([]string{"docker", "compose"}, "docker-compose.yml")
	c.Profiles = []string{MonitoringProfile}

	require.NoError(t, c.Up(context.Background()))
	require.Len(t, *captured, 1)

	found := false
	for _, kv := range (*captured)[0].Env {
		if kv == "COMPOSE_PROFILES=monitoring" {
			found = true
		}
	}
	assert.True(t, found, "COMPOSE_PROFILES not exported")
}

func TestRun_NoProfilesInheritsEnv(t *testing.T) {
	c, captured := newCapturingClient([]string{"docker", "compose"}, "docker-compose.yml")

	require.NoError(t, c.PS(context.Background()))
	require.Len(t, *captured, 1)
	assert.Nil(t, (*captured)[0].Env)
}

func TestRun_WrapsFailure(t *testing.T) {
	c := NewClient([]string{"docker", "compose"}, "docker-compose.yml", ".")
	c.Runner = func(*exec.Cmd) error { return errors.New("exit status 1") }

	err := c.Down(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker compose")
	assert.Contains(t, err.Error(), "down")
}

func TestRun_UnresolvedCommand(t *testing.T) {
	c := NewClient(nil, "docker-compose.yml", ".")
	assert.Error(t, c.PS(context.Background()))
}

func TestDetectCommand(t *testing.T) {
	haveAll := func(string) (string, error) { return "/usr/bin/tool", nil }
	haveOnly := func(names ...string) func(string) (string, error) {
		return func(file string) (string, error) {
			for _, n := range names {
				if n == file {
					return "/usr/bin/" + file, nil
				}
			}
			return "", exec.ErrNotFound
		}
	}
	probeOK := func(context.Context, string, ...string) error { return nil }
	probeFail := func(context.Context, string, ...string) error { return errors.New("unknown command") }

	t.Run("plugin preferred", func(t *testing.T) {
		command, err := DetectCommand(context.Background(), haveAll, probeOK)
		require.NoError(t, err)
		assert.Equal(t, "docker compose", strings.Join(command, " "))
	})

	t.Run("standalone fallback", func(t *testing.T) {
		command, err := DetectCommand(context.Background(), haveAll, probeFail)
		require.NoError(t, err)
		assert.Equal(t, []string{"docker-compose"}, command)
	})

	t.Run("docker without plugin or standalone", func(t *testing.T) {
		_, err := DetectCommand(context.Background(), haveOnly("docker"), probeFail)
		assert.Error(t, err)
	})

	t.Run("nothing installed", func(t *testing.T) {
		_, err := DetectCommand(context.Background(), haveOnly(), probeFail)
		assert.Error(t, err)
	})
}
