package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/kragchat/ragctl/internal/compose"
	"github.com/kragchat/ragctl/internal/config"
)

// newStatusCommand creates the "status" subcommand that prints container state
// for the selected mode's compose definition.
func newStatusCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show container status for the stack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			command, err := compose.DetectCommand(ctx, nil, nil)
			if err != nil {
				return err
			}

			client := compose.NewClient(command, opts.Mode.ComposeFile(), settings.ProjectDir)
			client.Stdout = cmd.OutOrStdout()
			return client.PS(ctx)
		},
	}

	registerModeFlags(cmd, opts)

	return cmd
}
