// Package hostmatch verifies certificate identity against a requested
// hostname following RFC 2818: subjectAltName DNS entries take precedence
// and the subject CommonName is only consulted when no DNS entry exists.
package hostmatch

import (
	"regexp"
	"strings"
)

// Pattern is a compiled DNS name, possibly containing wildcards, that can be
// matched against candidate hostnames.
type Pattern struct {
	re *regexp.Regexp
}

// Compile turns a DNS name into a Pattern. A label consisting solely of "*"
// matches exactly one non-empty label of the candidate. A "*" embedded in a
// label matches any run of non-dot characters, so partial-label wildcards
// like "f*.example.com" work. Matching is case-insensitive and anchored to
// the whole candidate.
//
// Wildcards never span labels, and IP-address candidates are out of scope:
// an IP literal will simply never match.
func Compile(dnsName string) Pattern {
	labels := strings.Split(dnsName, ".")
	pats := make([]string, 0, len(labels))
	for _, label := range labels {
		if label == "*" {
			pats = append(pats, `[^.]+`)
			continue
		}
		pats = append(pats, strings.ReplaceAll(regexp.QuoteMeta(label), `\*`, `[^.]*`))
	}

	// QuoteMeta leaves nothing unescapable behind, so this cannot fail.
	re := regexp.MustCompile(`(?i)\A` + strings.Join(pats, `\.`) + `\z`)
	return Pattern{re: re}
}

// Matches reports whether the candidate hostname matches the pattern.
func (p Pattern) Matches(hostname string) bool {
	return p.re.MatchString(hostname)
}
