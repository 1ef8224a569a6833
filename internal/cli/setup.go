package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/kragchat/ragctl/internal/checks"
	"github.com/kragchat/ragctl/internal/compose"
	"github.com/kragchat/ragctl/internal/config"
	"github.com/kragchat/ragctl/internal/logging"
	"github.com/kragchat/ragctl/internal/setup"
)

// setupTimeout bounds the whole pipeline; the no-cache image build dominates it.
const setupTimeout = 30 * time.Minute

// runSetup freezes the CLI options into a run configuration and executes the
// bootstrap pipeline.
func runSetup(ctx context.Context, logger *slog.Logger, opts *Options, stdout io.Writer, stdin io.Reader) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	runCfg := config.Options{
		Mode:       opts.Mode,
		Monitoring: opts.Monitoring,
		CheckOnly:  opts.CheckOnly,
	}

	comp := compose.NewClient(nil, runCfg.Mode.ComposeFile(), settings.ProjectDir)
	comp.Stderr = logging.NewWriter(logger, "compose")

	orch := &setup.Orchestrator{
		Opts:     runCfg,
		Settings: settings,
		Logger:   logger,
		Host:     checks.DefaultHost(),
		Runtime:  checks.NewRuntime(settings.OllamaURL),
		Compose:  comp,
		Confirm:  setup.NewReaderConfirmer(stdin, stdout),
		Stdout:   stdout,
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	logger.Info("bootstrapping stack", "mode", runCfg.Mode, "monitoring", runCfg.Monitoring, "check_only", runCfg.CheckOnly)

	pipe := &setup.Pipeline{Logger: logger, Steps: orch.Steps()}
	return pipe.Run(ctx)
}
