package probe

import (
	"context"
	"crypto/tls"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLegacyProbe_Accepted(t *testing.T) {
	ca := newTestCA(t)
	cert := ca.issue(t, []string{"localhost"}, 24*time.Hour)
	port := startTLSServer(t, &tls.Config{
		Certificates: []tls.Certificate{cert},
		//nolint:gosec // the server must offer the legacy protocol for this test
		MinVersion: tls.VersionTLS10,
		MaxVersion: tls.VersionTLS12,
	})

	p := NewLegacyProbe(5*time.Second, zap.NewNop())
	if !p.Probe(context.Background(), localTarget(port)) {
		t.Error("probe should report accepted when the server offers TLS 1.0")
	}
}

func TestLegacyProbe_Rejected(t *testing.T) {
	ca := newTestCA(t)
	cert := ca.issue(t, []string{"localhost"}, 24*time.Hour)
	port := startTLSServer(t, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})

	p := NewLegacyProbe(5*time.Second, zap.NewNop())
	if p.Probe(context.Background(), localTarget(port)) {
		t.Error("probe should report rejected when the server requires TLS 1.2+")
	}
}

func TestLegacyProbe_ConnectionFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	p := NewLegacyProbe(time.Second, zap.NewNop())
	if p.Probe(context.Background(), localTarget(port)) {
		t.Error("probe should report rejected when the connection fails")
	}
}
