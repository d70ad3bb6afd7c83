// Package target models the endpoints handed to the auditor by the hosting scanner.
package target

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Scheme identifies the URL scheme of a target.
type Scheme string

const (
	SchemeHTTPS Scheme = "https"
	SchemeOther Scheme = "other"
)

// Target is a single endpoint to audit.
// Fields are ordered for optimal memory alignment
type Target struct {
	Host   string
	Scheme Scheme
	Port   int
}

// Parse builds a Target from a raw URL string. The port defaults to 443
// for https and 80 otherwise when the URL does not carry one.
func Parse(raw string) (Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, fmt.Errorf("invalid target URL %q: %w", raw, err)
	}

	if u.Hostname() == "" {
		return Target{}, fmt.Errorf("target URL %q has no host", raw)
	}

	scheme := SchemeOther
	if strings.EqualFold(u.Scheme, "https") {
		scheme = SchemeHTTPS
	}

	port := 80
	if scheme == SchemeHTTPS {
		port = 443
	}
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return Target{}, fmt.Errorf("target URL %q has invalid port %q", raw, p)
		}
	}

	return Target{
		Host:   strings.ToLower(u.Hostname()),
		Port:   port,
		Scheme: scheme,
	}, nil
}

// Addr returns the host:port dial address.
func (t Target) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// String returns the hostname, omitting the port when it is the https default.
func (t Target) String() string {
	if t.Port == 443 {
		return t.Host
	}
	return t.Addr()
}
