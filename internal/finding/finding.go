// Package finding defines the typed findings produced by an audit run and
// the sinks they are delivered to.
package finding

import (
	"time"

	"github.com/certaudit-io/certaudit/internal/target"
)

// Kind enumerates the finding categories an audit can produce.
type Kind string

const (
	KindInsecureLegacyProtocol Kind = "insecure_legacy_protocol"
	KindInvalidCertificate     Kind = "invalid_certificate"
	KindInvalidConnection      Kind = "invalid_connection"
	KindSoonExpiring           Kind = "soon_expiring_certificate"
	KindCertificateInfo        Kind = "certificate_info"
)

// Severity ranks a finding's security relevance.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// severityByKind fixes the severity for each kind; it never varies per instance.
var severityByKind = map[Kind]Severity{
	KindInsecureLegacyProtocol: SeverityLow,
	KindInvalidCertificate:     SeverityLow,
	KindInvalidConnection:      SeverityInfo,
	KindSoonExpiring:           SeverityInfo,
	KindCertificateInfo:        SeverityInfo,
}

// Finding is a single audit observation. Findings are write-once: they are
// appended to a sink and never mutated afterwards.
// Fields are ordered for optimal memory alignment
type Finding struct {
	EmittedAt   time.Time
	Name        string
	Description string
	Target      target.Target
	Kind        Kind
	Severity    Severity
}

// names used in finding titles, mirroring the audit's vocabulary
var nameByKind = map[Kind]string{
	KindInsecureLegacyProtocol: "Insecure SSL version",
	KindInvalidCertificate:     "Invalid SSL certificate",
	KindInvalidConnection:      "Invalid SSL connection",
	KindSoonExpiring:           "Soon expire SSL certificate",
	KindCertificateInfo:        "SSL Certificate",
}

// New builds a Finding of the given kind. Severity is derived from the kind
// and cannot be chosen by the caller.
func New(kind Kind, tgt target.Target, description string) Finding {
	return Finding{
		Kind:        kind,
		Severity:    severityByKind[kind],
		Name:        nameByKind[kind],
		Target:      tgt,
		Description: description,
		EmittedAt:   time.Now().UTC(),
	}
}
