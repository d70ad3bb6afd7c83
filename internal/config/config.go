// Package config handles configuration loading and validation for CertAudit.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/certaudit-io/certaudit/internal/target"
)

// Config represents the complete auditor configuration
type Config struct {
	Audit   AuditConfig  `mapstructure:"audit"`
	Report  ReportConfig `mapstructure:"report"`
	Targets []string     `mapstructure:"targets"`
}

// AuditConfig contains audit behavior settings
// Fields are ordered for optimal memory alignment
type AuditConfig struct {
	CAFile        string        `mapstructure:"ca_file"`
	LogLevel      string        `mapstructure:"log_level"`
	MetricsAddr   string        `mapstructure:"metrics_addr"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MinExpireDays int           `mapstructure:"min_expire_days"`
	Concurrency   int           `mapstructure:"concurrency"`
}

// ReportConfig contains the optional findings collector settings
type ReportConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from viper
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Audit defaults
	v.SetDefault("audit.min_expire_days", 30)
	v.SetDefault("audit.ca_file", "ca.pem")
	v.SetDefault("audit.timeout", "10s")
	v.SetDefault("audit.concurrency", 10)
	v.SetDefault("audit.log_level", "info")

	// Report defaults
	v.SetDefault("report.timeout", "30s")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAudit(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if err := c.validateReport(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := c.validateTargets(); err != nil {
		return fmt.Errorf("targets: %w", err)
	}

	return nil
}

func (c *Config) validateAudit() error {
	if c.Audit.MinExpireDays < 0 {
		return fmt.Errorf("min_expire_days must not be negative")
	}

	if c.Audit.CAFile == "" {
		return fmt.Errorf("ca_file is required")
	}

	if c.Audit.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	if c.Audit.Concurrency < 1 || c.Audit.Concurrency > 50 {
		return fmt.Errorf("concurrency must be between 1 and 50")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Audit.LogLevel] {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}

	return nil
}

func (c *Config) validateReport() error {
	if c.Report.Endpoint == "" {
		return nil // reporting disabled
	}

	u, err := url.Parse(c.Report.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("endpoint must use http or https scheme")
	}

	if c.Report.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	return nil
}

func (c *Config) validateTargets() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}

	if len(c.Targets) > 10000 {
		return fmt.Errorf("maximum 10000 targets allowed")
	}

	for i, raw := range c.Targets {
		if _, err := target.Parse(raw); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}

	return nil
}

// ParseTargets converts the configured URL strings into Targets. Call after
// Validate, which guarantees every entry parses.
func (c *Config) ParseTargets() []target.Target {
	targets := make([]target.Target, 0, len(c.Targets))
	for _, raw := range c.Targets {
		tgt, err := target.Parse(raw)
		if err != nil {
			continue
		}
		targets = append(targets, tgt)
	}
	return targets
}
