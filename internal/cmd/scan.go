package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/audit"
	"github.com/certaudit-io/certaudit/internal/config"
	"github.com/certaudit-io/certaudit/internal/finding"
	"github.com/certaudit-io/certaudit/internal/metrics"
	"github.com/certaudit-io/certaudit/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Audit the configured HTTPS targets",
	Long: `Run the full audit sequence against every configured target: a deprecated
protocol probe followed by strict certificate validation and expiry checks.
Findings are written to the log and, if a report endpoint is configured,
submitted to the collector when the run finishes.

Example:
  certaudit scan -c /path/to/certaudit.yaml
  certaudit scan --config certaudit.yaml`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	// Load and validate configuration
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if validationErr := cfg.Validate(); validationErr != nil {
		return fmt.Errorf("invalid configuration: %w", validationErr)
	}

	logger, err := audit.NewLogger(cfg.Audit.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stdout sync errors are not actionable

	// Findings always go to the log; the memory sink feeds the collector
	// report after the run.
	memory := finding.NewMemorySink()
	sink := finding.MultiSink{finding.NewLogSink(logger), memory}

	auditor, err := audit.New(cfg, sink, logger)
	if err != nil {
		return fmt.Errorf("failed to create auditor: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal %v, shutting down...\n", sig)
		cancel()
	}()

	if cfg.Audit.MetricsAddr != "" {
		startMetricsServer(cfg.Audit.MetricsAddr, logger)
	}

	targets := cfg.ParseTargets()
	logger.Info("starting scan",
		zap.Int("targets", len(targets)),
		zap.Int("concurrency", cfg.Audit.Concurrency),
	)

	auditor.RunAll(ctx, targets)

	findings := memory.All()
	logger.Info("scan finished", zap.Int("findings", len(findings)))

	if cfg.Report.Endpoint != "" && len(findings) > 0 {
		client := report.New(cfg.Report.Endpoint, cfg.Report.Timeout, logger)
		resp, err := client.Submit(ctx, findings)
		if err != nil {
			return fmt.Errorf("failed to submit report: %w", err)
		}
		logger.Info("report submitted",
			zap.String("endpoint", cfg.Report.Endpoint),
			zap.Int("accepted", resp.Accepted),
		)
	}

	return nil
}

func startMetricsServer(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}
