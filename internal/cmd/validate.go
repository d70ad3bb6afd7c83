package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/certaudit-io/certaudit/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate the CertAudit configuration file without running a scan.

Example:
  certaudit validate -c /path/to/certaudit.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Println("Configuration is valid!")
	fmt.Printf("  Targets:          %d\n", len(cfg.Targets))
	fmt.Printf("  CA bundle:        %s\n", cfg.Audit.CAFile)
	fmt.Printf("  Min expire days:  %d\n", cfg.Audit.MinExpireDays)
	fmt.Printf("  Probe timeout:    %s\n", cfg.Audit.Timeout)
	fmt.Printf("  Concurrency:      %d\n", cfg.Audit.Concurrency)
	if cfg.Report.Endpoint != "" {
		fmt.Printf("  Report endpoint:  %s\n", cfg.Report.Endpoint)
	}

	return nil
}
