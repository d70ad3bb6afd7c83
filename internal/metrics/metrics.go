// Package metrics exposes prometheus instrumentation for audit runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	prometheus.MustRegister(
		AuditsTotal,
		FindingsTotal,
		LegacyProtocolAccepted,
		ProbeDuration,
		TargetsSkipped,
	)
}

var (
	// AuditsTotal counts completed target audits by certificate probe result.
	AuditsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "certaudit",
		Name:      "audits_total",
		Help:      "Total number of target audits by result",
	}, []string{"result"})

	// FindingsTotal counts findings emitted by kind.
	FindingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "certaudit",
		Name:      "findings_total",
		Help:      "Total number of findings emitted by kind",
	}, []string{"kind"})

	// LegacyProtocolAccepted counts targets that accepted the legacy protocol handshake.
	LegacyProtocolAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "certaudit",
		Name:      "legacy_protocol_accepted_total",
		Help:      "Total number of targets that accepted a deprecated protocol handshake",
	})

	// ProbeDuration tracks per-target audit duration.
	ProbeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "certaudit",
		Name:      "probe_duration_seconds",
		Help:      "Duration of per-target audits in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	// TargetsSkipped counts targets skipped before probing.
	TargetsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "certaudit",
		Name:      "targets_skipped_total",
		Help:      "Total number of targets skipped by reason",
	}, []string{"reason"})
)

// Handler returns the /metrics HTTP handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
