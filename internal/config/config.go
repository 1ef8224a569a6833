// Package config holds the run configuration for a ragctl invocation and
// materializes the deployment artifacts the stack expects on the host.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Mode selects which compose definition the stack is built and started from.
type Mode string

const (
	// ModeProduction starts the stack from the production compose definition.
	ModeProduction Mode = "production"
	// ModeDevelopment starts the stack from the development compose definition.
	ModeDevelopment Mode = "development"
)

// ComposeFile returns the compose definition file for the mode.
func (m Mode) ComposeFile() string {
	if m == ModeDevelopment {
		return "docker-compose.dev.yml"
	}
	return "docker-compose.yml"
}

// Options is the immutable run configuration parsed once from command-line
// arguments. Mode and Monitoring fully determine which compose definition and
// profiles are used; CheckOnly stops the pipeline after the prerequisite checks.
type Options struct {
	Mode       Mode
	Monitoring bool
	CheckOnly  bool
}

// Settings are operator overrides read from the process environment. The
// defaults match the constants the stack is deployed with.
type Settings struct {
	// ProjectDir is the directory holding the compose definitions and
	// where the .env file and data directories are materialized.
	ProjectDir string `env:"RAGCTL_PROJECT_DIR" envDefault:"."`
	// OllamaURL is the base URL of the optional local inference runtime.
	OllamaURL string `env:"RAGCTL_OLLAMA_URL" envDefault:"http://localhost:11434"`
	// WebURL is the externally reachable base URL of the web service.
	WebURL string `env:"RAGCTL_WEB_URL" envDefault:"http://localhost:8000"`
	// HealthURL is the service health endpoint probed after start.
	HealthURL string `env:"RAGCTL_HEALTH_URL" envDefault:"http://localhost:8000/health"`
	// OllamaGrace is the blind delay after starting the inference runtime.
	OllamaGrace time.Duration `env:"RAGCTL_OLLAMA_GRACE" envDefault:"5s"`
	// PostStartGrace is the blind delay before the post-start health probe.
	PostStartGrace time.Duration `env:"RAGCTL_POST_START_GRACE" envDefault:"10s"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment settings: %w", err)
	}
	return s, nil
}
