// Package expiry evaluates certificate validity end dates against an
// alerting threshold.
package expiry

import "time"

// DaysUntil returns the number of whole days between now and notAfter,
// truncated toward zero. The result is negative when the certificate has
// already expired.
func DaysUntil(notAfter, now time.Time) int {
	return int(notAfter.Sub(now).Hours() / 24)
}

// Soon reports whether a certificate expiring in days should be alerted on
// given the configured threshold. Already-expired certificates (negative
// days) are always soon.
func Soon(days, threshold int) bool {
	return days < threshold
}
