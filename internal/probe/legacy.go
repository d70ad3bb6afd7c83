package probe

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/target"
)

// LegacyProbe attempts a handshake pinned to a deprecated protocol version.
// It measures protocol acceptance only, so certificate verification is
// disabled. Any completed handshake means the server still offers the
// legacy protocol; any failure, transport or otherwise, means it does not.
//
// crypto/tls cannot negotiate SSLv2/SSLv3, so TLS 1.0 (deprecated per
// RFC 8996) is the lowest version this probe can pin.
type LegacyProbe struct {
	logger  *zap.Logger
	timeout time.Duration
}

// NewLegacyProbe creates a probe with the given connect/handshake timeout.
func NewLegacyProbe(timeout time.Duration, logger *zap.Logger) *LegacyProbe {
	return &LegacyProbe{
		timeout: timeout,
		logger:  logger,
	}
}

// Probe reports whether the target accepted a TLS 1.0 handshake. The
// connection is always closed before returning, and no error escapes: every
// failure collapses to false.
func (p *LegacyProbe) Probe(ctx context.Context, tgt target.Target) bool {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: p.timeout},
		Config: &tls.Config{
			ServerName: tgt.Host,
			MinVersion: tls.VersionTLS10,
			MaxVersion: tls.VersionTLS10,
			//nolint:gosec // acceptance of the legacy protocol is the measurement, not trust
			InsecureSkipVerify: true,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", tgt.Addr())
	if err != nil {
		p.logger.Debug("legacy protocol rejected",
			zap.String("target", tgt.Addr()),
			zap.Error(err),
		)
		return false
	}
	conn.Close()

	p.logger.Debug("legacy protocol accepted", zap.String("target", tgt.Addr()))
	return true
}
