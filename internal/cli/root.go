// Package cli defines the command-line interface for ragctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kragchat/ragctl/internal/config"
	"github.com/kragchat/ragctl/internal/logging"
)

// Options stores the CLI options shared between commands. Mode, Monitoring and
// CheckOnly are frozen into an immutable config.Options before the pipeline runs.
type Options struct {
	Mode       config.Mode
	Monitoring bool
	CheckOnly  bool
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and logger,
// and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		Mode:     config.ModeProduction,
		LogLevel: logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command. Running it without a
// subcommand executes the full bootstrap pipeline.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ragctl",
		Short: "ragctl bootstraps the RAG chatbot Docker deployment",
		Long: "ragctl validates host prerequisites (Docker, compose, the optional Ollama runtime),\n" +
			"materializes the .env file and data directories, builds the images and starts the\n" +
			"stack in production or development mode, optionally with the monitoring profile.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := logging.ParseLevel(cmd.Flag("log-level").Value.String())
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd.Context(), LoggerFromContext(cmd.Context()), opts, cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}

	registerModeFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.Monitoring, "monitoring", false, "Also start the monitoring profile (metrics collector + dashboard)")
	cmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false, "Run prerequisite checks and exit without provisioning")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newStatusCommand(opts),
		newDownCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
