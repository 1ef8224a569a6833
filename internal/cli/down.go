package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kragchat/ragctl/internal/compose"
	"github.com/kragchat/ragctl/internal/config"
)

// newDownCommand creates the "down" subcommand that stops and removes the stack.
func newDownCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop and remove the stack's containers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			command, err := compose.DetectCommand(ctx, nil, nil)
			if err != nil {
				return err
			}

			logger.Info("stopping stack", "mode", opts.Mode)
			client := compose.NewClient(command, opts.Mode.ComposeFile(), settings.ProjectDir)
			return client.Down(ctx)
		},
	}

	registerModeFlags(cmd, opts)

	return cmd
}
