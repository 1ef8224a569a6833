package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/kragchat/ragctl/internal/checks"
	"github.com/kragchat/ragctl/internal/compose"
	"github.com/kragchat/ragctl/internal/config"
)

// Orchestrator wires the bootstrap steps for one invocation. All fields are
// set once before Steps is called; the pipeline never mutates them except for
// resolving the compose command and profiles.
type Orchestrator struct {
	Opts     config.Options
	Settings config.Settings
	Logger   *slog.Logger
	Host     checks.Host
	Runtime  checks.Runtime
	Compose  *compose.Client
	Confirm  Confirmer
	// Stdout receives the access URLs printed after a successful health probe.
	Stdout io.Writer

	// Sleep and Probe are seams for the fixed grace delays and the one-shot
	// health probe; nil uses time.Sleep and checks.ProbeHealth.
	Sleep func(d time.Duration)
	Probe func(ctx context.Context, client *http.Client, url string) error

	// MemAvailable and DiskAvailable are seams for the resource readings;
	// nil uses the real /proc and statfs readers.
	MemAvailable  func() (uint64, error)
	DiskAvailable func(path string) (uint64, error)
}

// Steps assembles the ordered pipeline for the orchestrator's options.
func (o *Orchestrator) Steps() []Step {
	steps := []Step{
		{Name: "docker", Run: o.checkDocker},
		{Name: "resources", Run: o.checkResources},
		{Name: "ollama", Run: o.checkOllama},
	}

	if o.Opts.CheckOnly {
		return append(steps, Step{Name: "check-only", Run: func(context.Context) Result {
			return Stop("checks passed; skipping provisioning and start")
		}})
	}

	return append(steps,
		Step{Name: "env-file", Run: o.materializeEnvFile},
		Step{Name: "directories", Run: o.materializeDirs},
		Step{Name: "build", Run: o.buildImages},
		Step{Name: "start", Run: o.startStack},
		Step{Name: "health", Run: o.probeHealth},
	)
}

func (o *Orchestrator) checkDocker(ctx context.Context) Result {
	if err := o.Host.DockerInstalled(); err != nil {
		return Fatal(MissingDependency, err)
	}

	command, err := compose.DetectCommand(ctx, o.Host.LookPath, o.Host.RunCmd)
	if err != nil {
		return Fatal(MissingDependency, err)
	}
	o.Compose.Command = command

	if err := o.Host.DaemonReachable(ctx); err != nil {
		return Fatal(DaemonUnreachable, err)
	}
	return OK("docker and compose available, daemon reachable")
}

func (o *Orchestrator) checkResources(context.Context) Result {
	memAvailable := o.MemAvailable
	if memAvailable == nil {
		memAvailable = checks.AvailableMemory
	}
	diskAvailable := o.DiskAvailable
	if diskAvailable == nil {
		diskAvailable = checks.AvailableDisk
	}

	var shortfalls []error
	if mem, err := memAvailable(); err != nil {
		shortfalls = append(shortfalls, fmt.Errorf("memory reading unavailable: %w", err))
	} else if mem < checks.MinMemoryBytes {
		shortfalls = append(shortfalls, fmt.Errorf("available memory %d MiB is below the recommended 2 GiB", mem>>20))
	}
	if disk, err := diskAvailable(o.Settings.ProjectDir); err != nil {
		shortfalls = append(shortfalls, fmt.Errorf("disk reading unavailable: %w", err))
	} else if disk < checks.MinDiskBytes {
		shortfalls = append(shortfalls, fmt.Errorf("free disk %d GiB is below the recommended 5 GiB", disk>>30))
	}

	if len(shortfalls) > 0 {
		return Warn("host resources below recommended thresholds", errors.Join(shortfalls...))
	}
	return OK("memory and disk headroom sufficient")
}

func (o *Orchestrator) checkOllama(ctx context.Context) Result {
	if !o.Runtime.Installed() {
		ok, err := o.Confirm("Ollama is not installed; LLM requests will need a remote endpoint. Continue anyway?")
		if err != nil {
			return Fatal(UserDeclined, err)
		}
		if !ok {
			return Fatal(UserDeclined, errors.New("operator declined to continue without the local inference runtime"))
		}
		return OK("continuing without the local inference runtime")
	}

	if o.Runtime.Responding(ctx) {
		return OK("local inference runtime is responding")
	}

	proc, err := o.Runtime.StartDetached()
	if err != nil {
		return Warn("could not start the local inference runtime", err)
	}
	o.Logger.Info("started local inference runtime", "pid", proc.Pid, "grace", o.Settings.OllamaGrace)
	// Blind delay: the runtime exposes no cheap readiness signal at this point.
	o.sleep(o.Settings.OllamaGrace)
	return OK("local inference runtime started")
}

func (o *Orchestrator) materializeEnvFile(context.Context) Result {
	created, err := config.MaterializeEnvFile(o.Settings.ProjectDir)
	if err != nil {
		return Fatal(ConfigWriteFailure, err)
	}
	if created {
		return OK("environment file created")
	}
	return OK("environment file already present, left untouched")
}

func (o *Orchestrator) materializeDirs(context.Context) Result {
	if err := config.MaterializeDirs(o.Settings.ProjectDir); err != nil {
		return Fatal(ConfigWriteFailure, err)
	}
	written, err := config.MaterializeScrapeConfig(o.Settings.ProjectDir)
	if err != nil {
		return Fatal(ConfigWriteFailure, err)
	}
	if written {
		return OK("directory tree ready, default scrape config written")
	}
	return OK("directory tree ready")
}

func (o *Orchestrator) buildImages(ctx context.Context) Result {
	o.Logger.Info("building images", "file", o.Compose.File, "cache", false)
	if err := o.Compose.Build(ctx, true); err != nil {
		return Fatal(BuildFailure, err)
	}
	return OK("images built")
}

func (o *Orchestrator) startStack(ctx context.Context) Result {
	if o.Opts.Monitoring {
		o.Compose.Profiles = []string{compose.MonitoringProfile}
	}
	o.Logger.Info("starting stack", "mode", o.Opts.Mode, "file", o.Compose.File, "monitoring", o.Opts.Monitoring)
	if err := o.Compose.Up(ctx); err != nil {
		return Fatal(StartFailure, err)
	}
	return OK("stack started")
}

func (o *Orchestrator) probeHealth(ctx context.Context) Result {
	o.sleep(o.Settings.PostStartGrace)

	probe := o.Probe
	if probe == nil {
		probe = checks.ProbeHealth
	}
	if err := probe(ctx, nil, o.Settings.HealthURL); err != nil {
		return Warn("service health probe failed; the stack may still be starting", err)
	}

	stdout := o.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	fmt.Fprintf(stdout, "Web UI:  %s\n", o.Settings.WebURL)
	fmt.Fprintf(stdout, "Health:  %s\n", o.Settings.HealthURL)
	fmt.Fprintf(stdout, "Docs:    %s/docs\n", o.Settings.WebURL)
	return OK("service is healthy")
}

func (o *Orchestrator) sleep(d time.Duration) {
	if o.Sleep != nil {
		o.Sleep(d)
		return
	}
	time.Sleep(d)
}
