package probe

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"strings"
)

// Classifier decides whether a handshake error represents a trust problem
// (untrusted, expired, or mismatched certificate) as opposed to a plain
// negotiation failure. The distinction drives which finding kind is emitted.
type Classifier func(err error) bool

// DefaultClassifier checks the structured error types crypto/tls and
// crypto/x509 produce, and only falls back to a substring scan of the error
// text for errors that carry no type. The text scan is approximate: the TLS
// error taxonomy is coarse and some libraries word things differently.
func DefaultClassifier(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		certInvalid      x509.CertificateInvalidError
		hostnameErr      x509.HostnameError
		verifyErr        *tls.CertificateVerificationError
	)
	if errors.As(err, &unknownAuthority) ||
		errors.As(err, &certInvalid) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &verifyErr) {
		return true
	}

	text := strings.ToLower(err.Error())
	for _, marker := range []string{"certificate", "x509", "unknown authority"} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
