package probe

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"time"
)

// Snapshot captures everything the audit needs from a peer certificate at
// handshake time. The underlying connection is closed immediately after the
// snapshot is taken, so the snapshot must stay valid on its own.
// Fields are ordered for optimal memory alignment
type Snapshot struct {
	NotAfter     time.Time
	NotBefore    time.Time
	Subject      string
	Issuer       string
	SerialNumber string
	Cipher       string
	Protocol     string
	DNSNames     []string
	Raw          []byte
}

// NewSnapshot builds a Snapshot from the leaf certificate and negotiated
// connection state.
func NewSnapshot(leaf *x509.Certificate, state tls.ConnectionState) *Snapshot {
	raw := make([]byte, len(leaf.Raw))
	copy(raw, leaf.Raw)

	return &Snapshot{
		Subject:      leaf.Subject.String(),
		Issuer:       leaf.Issuer.String(),
		SerialNumber: leaf.SerialNumber.String(),
		NotBefore:    leaf.NotBefore.UTC(),
		NotAfter:     leaf.NotAfter.UTC(),
		DNSNames:     append([]string(nil), leaf.DNSNames...),
		Cipher:       tls.CipherSuiteName(state.CipherSuite),
		Protocol:     versionName(state.Version),
		Raw:          raw,
	}
}

// Dump renders a human-readable description of the certificate: subject,
// issuer, SAN list, negotiated cipher, and the PEM-encoded certificate.
// Every line is indented so the block reads as a quoted attachment in
// finding output.
func (s *Snapshot) Dump() string {
	var b strings.Builder

	b.WriteString("== Certificate information ==\n")
	fmt.Fprintf(&b, "Subject:    %s\n", s.Subject)
	fmt.Fprintf(&b, "Issuer:     %s\n", s.Issuer)
	fmt.Fprintf(&b, "Serial:     %s\n", s.SerialNumber)
	fmt.Fprintf(&b, "Not before: %s\n", s.NotBefore.Format(time.RFC3339))
	fmt.Fprintf(&b, "Not after:  %s\n", s.NotAfter.Format(time.RFC3339))
	if len(s.DNSNames) > 0 {
		fmt.Fprintf(&b, "SAN:        %s\n", strings.Join(s.DNSNames, ", "))
	}

	b.WriteString("\n== Used cipher ==\n")
	fmt.Fprintf(&b, "%s (%s)\n", s.Cipher, s.Protocol)

	b.WriteString("\n== Certificate dump ==\n")
	b.Write(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: s.Raw}))

	return indent(b.String(), "    ")
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func versionName(v uint16) string {
	switch v {
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	default:
		return fmt.Sprintf("0x%04x", v)
	}
}
