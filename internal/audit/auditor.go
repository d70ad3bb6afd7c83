// Package audit orchestrates the per-target probe sequence and emits findings.
package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/config"
	"github.com/certaudit-io/certaudit/internal/dedup"
	"github.com/certaudit-io/certaudit/internal/expiry"
	"github.com/certaudit-io/certaudit/internal/finding"
	"github.com/certaudit-io/certaudit/internal/metrics"
	"github.com/certaudit-io/certaudit/internal/probe"
	"github.com/certaudit-io/certaudit/internal/target"
)

// LegacyProber attempts a deprecated-protocol handshake and reports whether
// the peer accepted it.
type LegacyProber interface {
	Probe(ctx context.Context, tgt target.Target) bool
}

// CertProber performs the strict certificate validation handshake.
type CertProber interface {
	Probe(ctx context.Context, tgt target.Target) probe.Outcome
}

// Auditor runs the audit sequence for each target: legacy protocol probe,
// then certificate validation, then expiry evaluation. Audits of distinct
// targets may run in parallel; per-target work is strictly sequential so
// only one connection to a host is open at a time.
type Auditor struct {
	legacy        LegacyProber
	validator     CertProber
	probed        *dedup.ProbedSet
	sink          finding.Sink
	logger        *zap.Logger
	now           func() time.Time
	minExpireDays int
	concurrency   int
}

// New creates an Auditor from the configuration. A missing or malformed CA
// bundle is fatal here, before any target is probed.
func New(cfg *config.Config, sink finding.Sink, logger *zap.Logger) (*Auditor, error) {
	validator, err := probe.NewValidator(cfg.Audit.CAFile, cfg.Audit.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate validator: %w", err)
	}

	return &Auditor{
		legacy:        probe.NewLegacyProbe(cfg.Audit.Timeout, logger),
		validator:     validator,
		probed:        dedup.NewProbedSet(),
		sink:          sink,
		logger:        logger,
		now:           time.Now,
		minExpireDays: cfg.Audit.MinExpireDays,
		concurrency:   cfg.Audit.Concurrency,
	}, nil
}

// RunAll audits every target, running up to the configured number of audits
// in parallel. Per-target failures never abort the run.
func (a *Auditor) RunAll(ctx context.Context, targets []target.Target) {
	start := time.Now()
	a.logger.Info("starting audit run", zap.Int("targets", len(targets)))

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.concurrency)

	for _, tgt := range targets {
		wg.Add(1)
		go func(tgt target.Target) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			a.Audit(ctx, tgt)
		}(tgt)
	}

	wg.Wait()
	a.logger.Info("audit run complete", zap.Duration("duration", time.Since(start)))
}

// Audit runs the full probe sequence for one target. Non-HTTPS targets and
// domains already probed this run are skipped. The dedup check-then-insert
// is atomic, so concurrent audits of the same domain resolve to exactly one
// probe.
func (a *Auditor) Audit(ctx context.Context, tgt target.Target) {
	if tgt.Scheme != target.SchemeHTTPS {
		metrics.TargetsSkipped.WithLabelValues("not_https").Inc()
		return
	}

	if a.probed.TestOrAdd(tgt.Host) {
		metrics.TargetsSkipped.WithLabelValues("already_probed").Inc()
		a.logger.Debug("domain already audited", zap.String("domain", tgt.Host))
		return
	}

	start := time.Now()
	defer func() {
		metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	}()

	// Legacy protocol check is best-effort and independent of the
	// certificate probe: its failure never stops the sequence.
	if a.legacy.Probe(ctx, tgt) {
		metrics.LegacyProtocolAccepted.Inc()
		a.emit(finding.New(finding.KindInsecureLegacyProtocol, tgt,
			fmt.Sprintf("The target host %q has the deprecated TLS 1.0 protocol enabled, which is known to be insecure.", tgt.Host)))
	}

	out := a.validator.Probe(ctx, tgt)
	switch out.Status {
	case probe.StatusSuccess:
		metrics.AuditsTotal.WithLabelValues("success").Inc()
		a.evaluateCertificate(tgt, out.Snapshot)

	case probe.StatusInvalidCertificate:
		metrics.AuditsTotal.WithLabelValues("invalid_certificate").Inc()
		a.emit(finding.New(finding.KindInvalidCertificate, tgt,
			fmt.Sprintf("%q uses an invalid security certificate. The certificate is not trusted because: %q.", tgt.Host, out.Reason)))

	case probe.StatusInvalidConnection:
		// Too common to be actionable as a vulnerability; reported as info.
		metrics.AuditsTotal.WithLabelValues("invalid_connection").Inc()
		a.emit(finding.New(finding.KindInvalidConnection, tgt,
			fmt.Sprintf("%q has an invalid SSL configuration. Technical details: %q", tgt.Host, out.Reason)))

	case probe.StatusConnectionFailed:
		// The probe could not run; not a security signal.
		metrics.AuditsTotal.WithLabelValues("connection_failed").Inc()
		a.logger.Debug("connection failed, skipping target",
			zap.String("target", tgt.Addr()),
			zap.String("reason", out.Reason),
		)
	}
}

func (a *Auditor) evaluateCertificate(tgt target.Target, snap *probe.Snapshot) {
	days := expiry.DaysUntil(snap.NotAfter, a.now())
	if expiry.Soon(days, a.minExpireDays) {
		a.emit(finding.New(finding.KindSoonExpiring, tgt,
			fmt.Sprintf("The certificate for %q will expire soon (%d day(s) left).", tgt.Host, days)))
	}

	a.emit(finding.New(finding.KindCertificateInfo, tgt,
		"This is the information about the SSL certificate used in the target site:\n"+snap.Dump()))
}

func (a *Auditor) emit(f finding.Finding) {
	metrics.FindingsTotal.WithLabelValues(string(f.Kind)).Inc()
	a.sink.Append(f)
}
