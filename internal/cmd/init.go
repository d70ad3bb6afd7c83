package cmd

import (
	"github.com/spf13/cobra"

	"github.com/certaudit-io/certaudit/internal/cmd/initcmd"
)

var (
	initOutputPath     string
	initNonInteractive bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new CertAudit configuration",
	Long: `Interactively create a new CertAudit configuration file.

The wizard will guide you through setting up:
  • Audit behavior (CA bundle, expiry threshold, timeout, log level)
  • Targets to audit (HTTPS URLs)
  • Optional findings collector endpoint

Examples:
  # Interactive mode (default)
  certaudit init

  # Specify output path
  certaudit init -o /etc/certaudit/certaudit.yaml

  # Non-interactive mode (for CI/scripting)
  CERTAUDIT_TARGETS=https://api.example.com certaudit init --non-interactive

Environment variables for non-interactive mode:
  CERTAUDIT_TARGETS          (required) Comma-separated target URLs
  CERTAUDIT_CA_FILE          (optional) CA bundle path (default: ca.pem)
  CERTAUDIT_MIN_EXPIRE_DAYS  (optional) Expiry warning threshold (default: 30)
  CERTAUDIT_LOG_LEVEL        (optional) Log level (default: info)
  CERTAUDIT_REPORT_ENDPOINT  (optional) Findings collector URL`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", "./certaudit.yaml",
		"Output path for the configuration file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false,
		"Run in non-interactive mode using environment variables")
}

func runInit(_ *cobra.Command, _ []string) error {
	if initNonInteractive {
		return initcmd.RunNonInteractive(initOutputPath)
	}

	wizard := initcmd.NewWizard()
	wizard.SetOutputPath(initOutputPath)
	return wizard.Run()
}
