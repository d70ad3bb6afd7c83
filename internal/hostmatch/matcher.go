package hostmatch

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"strings"
)

// Status classifies the outcome of an identity check.
type Status int

const (
	// StatusMatch means some identity in the certificate covers the hostname.
	StatusMatch Status = iota
	// StatusMismatch means identities were present but none covered the hostname.
	StatusMismatch
	// StatusNoIdentity means the certificate carried no usable DNS identity at all.
	StatusNoIdentity
)

// Result is the outcome of matching a certificate against a hostname.
// Candidates holds the identities that were considered when no match was
// found, in certificate order.
type Result struct {
	Candidates []string
	Status     Status
}

var oidCommonName = []int{2, 5, 4, 3}

// Verify checks whether cert's identity covers hostname.
//
// SAN DNS entries are checked first. The subject CommonName is consulted
// only when the SAN extension contains zero DNS entries; once any DNS entry
// exists, a failure to match is reported against the SAN values alone. All
// CommonName attributes are scanned, since a subject may legally carry more
// than one.
func Verify(cert *x509.Certificate, hostname string) Result {
	if cert == nil {
		return Result{Status: StatusNoIdentity}
	}
	return verifyNames(cert.DNSNames, commonNames(cert.Subject), hostname)
}

func verifyNames(dnsNames, commonNames []string, hostname string) Result {
	candidates := make([]string, 0, len(dnsNames))
	for _, name := range dnsNames {
		if Compile(name).Matches(hostname) {
			return Result{Status: StatusMatch}
		}
		candidates = append(candidates, name)
	}

	if len(candidates) == 0 {
		for _, name := range commonNames {
			if Compile(name).Matches(hostname) {
				return Result{Status: StatusMatch}
			}
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		return Result{Status: StatusNoIdentity}
	}
	return Result{Status: StatusMismatch, Candidates: candidates}
}

func commonNames(subject pkix.Name) []string {
	var names []string
	for _, atv := range subject.Names {
		if !atv.Type.Equal(oidCommonName) {
			continue
		}
		if s, ok := atv.Value.(string); ok {
			names = append(names, s)
		}
	}
	return names
}

// Reason renders a diagnostic string for a failed check, mirroring the
// level of detail expected in finding descriptions.
func (r Result) Reason(hostname string) string {
	switch r.Status {
	case StatusMatch:
		return ""
	case StatusNoIdentity:
		return "no appropriate commonName or subjectAltName fields were found"
	default:
	}
	if len(r.Candidates) == 1 {
		return fmt.Sprintf("hostname %s doesn't match %s", hostname, r.Candidates[0])
	}
	return fmt.Sprintf("hostname %s doesn't match either of %s", hostname, strings.Join(r.Candidates, ", "))
}
