// Package initcmd provides the interactive init command wizard.
package initcmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/certaudit-io/certaudit/internal/config"
)

// WizardState holds all collected input during the wizard.
type WizardState struct {
	// Output configuration
	ConfigPath    string
	OverwriteFile bool

	// Audit configuration
	CAFile           string
	MinExpireDaysStr string
	TimeoutStr       string
	ConcurrencyStr   string
	LogLevel         string

	// Report configuration
	ReportEnabled  bool
	ReportEndpoint string

	// Target configuration
	Targets       []TargetInput
	CurrentTarget TargetInput
	AddAnother    bool
}

// TargetInput represents user input for a single target.
type TargetInput struct {
	URL string
}

// NewWizardState creates a new WizardState with sensible defaults.
func NewWizardState() *WizardState {
	return &WizardState{
		ConfigPath:       "./certaudit.yaml",
		CAFile:           "ca.pem",
		MinExpireDaysStr: "30",
		TimeoutStr:       "10s",
		ConcurrencyStr:   "10",
		LogLevel:         "info",
		Targets:          make([]TargetInput, 0),
	}
}

// ToConfig converts the wizard state to a config.Config struct.
func (s *WizardState) ToConfig() (*config.Config, error) {
	minExpireDays, err := strconv.Atoi(s.MinExpireDaysStr)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry threshold: %w", err)
	}

	timeout, err := time.ParseDuration(s.TimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	concurrency, err := strconv.Atoi(s.ConcurrencyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid concurrency: %w", err)
	}

	targets := make([]string, 0, len(s.Targets))
	for _, t := range s.Targets {
		targets = append(targets, strings.TrimSpace(t.URL))
	}

	cfg := &config.Config{
		Audit: config.AuditConfig{
			CAFile:        s.CAFile,
			LogLevel:      s.LogLevel,
			Timeout:       timeout,
			MinExpireDays: minExpireDays,
			Concurrency:   concurrency,
		},
		Targets: targets,
	}

	if s.ReportEnabled && s.ReportEndpoint != "" {
		cfg.Report = config.ReportConfig{
			Endpoint: s.ReportEndpoint,
			Timeout:  30 * time.Second,
		}
	} else {
		cfg.Report = config.ReportConfig{Timeout: 30 * time.Second}
	}

	return cfg, nil
}

// ResetCurrentTarget resets the current target input for the next entry.
func (s *WizardState) ResetCurrentTarget() {
	s.CurrentTarget = TargetInput{}
	s.AddAnother = false
}

// SaveCurrentTarget saves the current target to the list.
func (s *WizardState) SaveCurrentTarget() {
	if strings.TrimSpace(s.CurrentTarget.URL) != "" {
		s.Targets = append(s.Targets, s.CurrentTarget)
	}
}
