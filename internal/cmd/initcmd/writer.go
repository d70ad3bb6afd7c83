package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/certaudit-io/certaudit/internal/config"
)

// yamlConfig mirrors config.Config with the key names the loader expects.
type yamlConfig struct {
	Audit   yamlAudit   `yaml:"audit"`
	Report  *yamlReport `yaml:"report,omitempty"`
	Targets []string    `yaml:"targets"`
}

type yamlAudit struct {
	CAFile        string `yaml:"ca_file"`
	LogLevel      string `yaml:"log_level"`
	Timeout       string `yaml:"timeout"`
	MinExpireDays int    `yaml:"min_expire_days"`
	Concurrency   int    `yaml:"concurrency"`
}

type yamlReport struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteConfig writes the configuration as YAML, creating parent directories
// as needed.
func WriteConfig(cfg *config.Config, path string) error {
	out := yamlConfig{
		Audit: yamlAudit{
			CAFile:        cfg.Audit.CAFile,
			LogLevel:      cfg.Audit.LogLevel,
			Timeout:       cfg.Audit.Timeout.String(),
			MinExpireDays: cfg.Audit.MinExpireDays,
			Concurrency:   cfg.Audit.Concurrency,
		},
		Targets: cfg.Targets,
	}

	if cfg.Report.Endpoint != "" {
		out.Report = &yamlReport{
			Endpoint: cfg.Report.Endpoint,
			Timeout:  cfg.Report.Timeout.String(),
		}
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
