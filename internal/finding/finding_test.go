package finding

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/target"
)

func TestNew_SeverityFixedByKind(t *testing.T) {
	tgt := target.Target{Host: "example.com", Port: 443, Scheme: target.SchemeHTTPS}

	cases := []struct {
		kind Kind
		want Severity
	}{
		{KindInsecureLegacyProtocol, SeverityLow},
		{KindInvalidCertificate, SeverityLow},
		{KindInvalidConnection, SeverityInfo},
		{KindSoonExpiring, SeverityInfo},
		{KindCertificateInfo, SeverityInfo},
	}
	for _, tc := range cases {
		f := New(tc.kind, tgt, "desc")
		if f.Severity != tc.want {
			t.Errorf("New(%s).Severity = %v, want %v", tc.kind, f.Severity, tc.want)
		}
		if f.Name == "" {
			t.Errorf("New(%s).Name is empty", tc.kind)
		}
	}
}

func TestMemorySink_PreservesOrder(t *testing.T) {
	sink := NewMemorySink()
	tgt := target.Target{Host: "example.com", Port: 443}

	sink.Append(New(KindInsecureLegacyProtocol, tgt, "first"))
	sink.Append(New(KindCertificateInfo, tgt, "second"))

	got := sink.All()
	if len(got) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(got))
	}
	if got[0].Description != "first" || got[1].Description != "second" {
		t.Errorf("findings out of order: %v", got)
	}
}

func TestMemorySink_ConcurrentAppends(t *testing.T) {
	sink := NewMemorySink()
	tgt := target.Target{Host: "example.com", Port: 443}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Append(New(KindCertificateInfo, tgt, "x"))
		}()
	}
	wg.Wait()

	if n := len(sink.All()); n != 50 {
		t.Errorf("len(All()) = %d, want 50", n)
	}
}

func TestMultiSink_FansOut(t *testing.T) {
	a := NewMemorySink()
	b := NewMemorySink()
	multi := MultiSink{a, b, NewLogSink(zap.NewNop())}

	multi.Append(New(KindInvalidCertificate, target.Target{Host: "x.com"}, "d"))

	if len(a.All()) != 1 || len(b.All()) != 1 {
		t.Error("finding not delivered to all sinks")
	}
}
