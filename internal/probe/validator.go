// Package probe performs the network-facing TLS handshakes of an audit run
// and classifies their outcomes.
package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/hostmatch"
	"github.com/certaudit-io/certaudit/internal/target"
)

// Status classifies a certificate validation probe.
type Status int

const (
	// StatusSuccess means the chain is trusted and the hostname matched.
	StatusSuccess Status = iota
	// StatusInvalidCertificate means the chain is untrusted or the identity
	// check failed. Security-relevant.
	StatusInvalidCertificate
	// StatusInvalidConnection means the handshake failed for a non-trust
	// reason (no shared cipher, version negotiation). Informational.
	StatusInvalidConnection
	// StatusConnectionFailed means the probe could not run at all (refused,
	// timeout, reset). Not a security signal.
	StatusConnectionFailed
)

// Outcome is the classified result of a validation probe.
type Outcome struct {
	Snapshot *Snapshot
	Reason   string
	Status   Status
}

// Validator performs a strict handshake: the certificate chain is verified
// against a configured trust-anchor bundle by the TLS layer, and hostname
// identity is checked separately afterwards so the two failure modes can be
// told apart.
type Validator struct {
	roots    *x509.CertPool
	logger   *zap.Logger
	classify Classifier
	timeout  time.Duration
}

// NewValidator loads the CA bundle at caFile and returns a configured
// Validator. An unreadable or empty bundle is a configuration error and
// fatal to the whole audit run, so it is surfaced here rather than
// per-target.
func NewValidator(caFile string, timeout time.Duration, logger *zap.Logger) (*Validator, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle %s: %w", caFile, err)
	}

	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("CA bundle %s contains no usable certificates", caFile)
	}

	return &Validator{
		roots:    roots,
		timeout:  timeout,
		classify: DefaultClassifier,
		logger:   logger,
	}, nil
}

// SetClassifier replaces the trust-error predicate. Intended for runtimes
// whose TLS library exposes richer error codes than the default heuristic
// can see.
func (v *Validator) SetClassifier(c Classifier) {
	v.classify = c
}

// Probe dials the target, performs the strict handshake, and classifies the
// result. The connection is always closed before returning; certificate data
// survives in the returned Snapshot.
func (v *Validator) Probe(ctx context.Context, tgt target.Target) Outcome {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: v.timeout},
		Config: &tls.Config{
			ServerName: tgt.Host,
			// Chain verification runs in VerifyPeerCertificate against the
			// configured roots; hostname identity is checked after the
			// handshake so mismatches classify separately from trust failures.
			//nolint:gosec // verification happens manually, see above
			InsecureSkipVerify:    true,
			VerifyPeerCertificate: v.verifyChain,
			MinVersion:            tls.VersionTLS10,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", tgt.Addr())
	if err != nil {
		return v.classifyError(tgt, err)
	}

	tlsConn := conn.(*tls.Conn)
	state := tlsConn.ConnectionState()
	leaf := state.PeerCertificates[0]

	identity := hostmatch.Verify(leaf, tgt.Host)
	if identity.Status != hostmatch.StatusMatch {
		tlsConn.Close()
		return Outcome{
			Status: StatusInvalidCertificate,
			Reason: identity.Reason(tgt.Host),
		}
	}

	snapshot := NewSnapshot(leaf, state)
	tlsConn.Close()

	return Outcome{Status: StatusSuccess, Snapshot: snapshot}
}

// verifyChain validates the presented chain against the configured roots.
// No DNS name is passed, so this checks trust only; identity is handled by
// the caller.
func (v *Validator) verifyChain(rawCerts [][]byte, _ [][]*x509.Certificate) error {
	if len(rawCerts) == 0 {
		return errors.New("server presented no certificates")
	}

	certs := make([]*x509.Certificate, 0, len(rawCerts))
	for _, raw := range rawCerts {
		cert, err := x509.ParseCertificate(raw)
		if err != nil {
			return fmt.Errorf("failed to parse peer certificate: %w", err)
		}
		certs = append(certs, cert)
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	_, err := certs[0].Verify(x509.VerifyOptions{
		Roots:         v.roots,
		Intermediates: intermediates,
	})
	return err
}

func (v *Validator) classifyError(tgt target.Target, err error) Outcome {
	// Trust failures first: chain-verification errors surface as x509 error
	// types and are never transport errors.
	if v.classify(err) {
		return Outcome{Status: StatusInvalidCertificate, Reason: err.Error()}
	}

	var opErr *net.OpError
	var netErr net.Error
	if errors.As(err, &opErr) ||
		(errors.As(err, &netErr) && netErr.Timeout()) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		v.logger.Debug("connection failed",
			zap.String("target", tgt.Addr()),
			zap.Error(err),
		)
		return Outcome{Status: StatusConnectionFailed, Reason: err.Error()}
	}

	return Outcome{Status: StatusInvalidConnection, Reason: err.Error()}
}
