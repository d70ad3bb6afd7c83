// Package cmd provides CLI commands for CertAudit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/certaudit-io/certaudit/internal/version"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "certaudit",
	Short: "CertAudit - SSL/TLS endpoint auditor",
	Long: `CertAudit probes HTTPS endpoints for SSL/TLS weaknesses: deprecated
protocol versions, untrusted or mismatched certificates, broken TLS
configurations and certificates that are about to expire.

Configure targets in certaudit.yaml and run:
  certaudit scan -c /path/to/certaudit.yaml`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./certaudit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Bind flags to viper
	//nolint:errcheck // error is ignored because the flag is guaranteed to exist
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/certaudit")
		viper.SetConfigType("yaml")
		viper.SetConfigName("certaudit")
	}

	// Read environment variables with CERTAUDIT_ prefix
	viper.SetEnvPrefix("CERTAUDIT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// GetVersion returns the version information
func GetVersion() string {
	return version.GetVersion()
}
