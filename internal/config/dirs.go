package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RequiredDirs is the fixed directory tree the stack expects under the project directory.
var RequiredDirs = []string{
	"uploads",
	"vector_db_data",
	"logs",
	"monitoring/prometheus",
	"monitoring/grafana/provisioning",
	"monitoring/grafana/dashboards",
	"nginx/conf.d",
}

// MaterializeDirs idempotently creates the required directory tree under projectDir.
func MaterializeDirs(projectDir string) error {
	for _, dir := range RequiredDirs {
		path := filepath.Join(projectDir, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", path, err)
		}
	}
	return nil
}

// scrapeConfig mirrors the subset of the Prometheus configuration the
// monitoring profile needs.
type scrapeConfig struct {
	Global        scrapeGlobal `yaml:"global"`
	ScrapeConfigs []scrapeJob  `yaml:"scrape_configs"`
}

type scrapeGlobal struct {
	ScrapeInterval string `yaml:"scrape_interval"`
}

type scrapeJob struct {
	JobName       string         `yaml:"job_name"`
	MetricsPath   string         `yaml:"metrics_path,omitempty"`
	StaticConfigs []staticConfig `yaml:"static_configs"`
}

type staticConfig struct {
	Targets []string `yaml:"targets"`
}

// MaterializeScrapeConfig writes the default Prometheus scrape configuration
// for the monitoring profile unless one already exists.
// It reports whether a file was written.
func MaterializeScrapeConfig(projectDir string) (bool, error) {
	path := filepath.Join(projectDir, "monitoring", "prometheus", "prometheus.yml")
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	cfg := scrapeConfig{
		Global: scrapeGlobal{ScrapeInterval: "15s"},
		ScrapeConfigs: []scrapeJob{
			{
				JobName:       "rag-chatbot",
				MetricsPath:   "/metrics",
				StaticConfigs: []staticConfig{{Targets: []string{"web:8000"}}},
			},
			{
				JobName:       "prometheus",
				StaticConfigs: []staticConfig{{Targets: []string{"localhost:9090"}}},
			},
		},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return false, fmt.Errorf("encode scrape config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
