package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kragchat/ragctl/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExecute_Help(t *testing.T) {
	assert.NoError(t, Execute([]string{"--help"}, discardLogger()))
	assert.NoError(t, Execute([]string{"-h"}, discardLogger()))
}

func TestExecute_UnknownFlag(t *testing.T) {
	opts := &Options{Mode: config.ModeProduction}
	cmd := newRootCommand(opts, discardLogger())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--frobnicate"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
	assert.Contains(t, out.String(), "Usage:")
}

func TestModeFlags_LastSpecifiedWins(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want config.Mode
	}{
		{"default is production", nil, config.ModeProduction},
		{"dev", []string{"--dev"}, config.ModeDevelopment},
		{"dev short", []string{"-d"}, config.ModeDevelopment},
		{"prod", []string{"--prod"}, config.ModeProduction},
		{"prod short", []string{"-p"}, config.ModeProduction},
		{"dev then prod", []string{"--dev", "--prod"}, config.ModeProduction},
		{"prod then dev", []string{"--prod", "--dev"}, config.ModeDevelopment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := &Options{Mode: config.ModeProduction}
			cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
			registerModeFlags(cmd, opts)
			cmd.SetArgs(tc.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.want, opts.Mode)
		})
	}
}

func TestRootFlags_MonitoringAndCheckOnly(t *testing.T) {
	opts := &Options{Mode: config.ModeProduction}
	cmd := newRootCommand(opts, discardLogger())
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--dev", "--monitoring", "--check-only"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, config.ModeDevelopment, opts.Mode)
	assert.True(t, opts.Monitoring)
	assert.True(t, opts.CheckOnly)
}

func TestSubcommandsRegistered(t *testing.T) {
	cmd := newRootCommand(&Options{Mode: config.ModeProduction}, discardLogger())

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "down")
}
