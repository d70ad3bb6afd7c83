package target

import "testing"

func TestParse_HTTPSDefaults(t *testing.T) {
	tgt, err := Parse("https://example.com")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tgt.Host != "example.com" {
		t.Errorf("Host = %v, want example.com", tgt.Host)
	}
	if tgt.Port != 443 {
		t.Errorf("Port = %v, want 443", tgt.Port)
	}
	if tgt.Scheme != SchemeHTTPS {
		t.Errorf("Scheme = %v, want https", tgt.Scheme)
	}
}

func TestParse_ExplicitPort(t *testing.T) {
	tgt, err := Parse("https://internal.example.net:8443/login")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tgt.Port != 8443 {
		t.Errorf("Port = %v, want 8443", tgt.Port)
	}
	if tgt.Addr() != "internal.example.net:8443" {
		t.Errorf("Addr() = %v, want internal.example.net:8443", tgt.Addr())
	}
}

func TestParse_NonHTTPS(t *testing.T) {
	tgt, err := Parse("http://example.com")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tgt.Scheme != SchemeOther {
		t.Errorf("Scheme = %v, want other", tgt.Scheme)
	}
	if tgt.Port != 80 {
		t.Errorf("Port = %v, want 80", tgt.Port)
	}
}

func TestParse_HostLowercased(t *testing.T) {
	tgt, err := Parse("https://EXAMPLE.com")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tgt.Host != "example.com" {
		t.Errorf("Host = %v, want example.com", tgt.Host)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"https://",
		"https://example.com:notaport",
		"https://example.com:99999",
	}
	for _, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", raw)
		}
	}
}

func TestString_OmitsDefaultPort(t *testing.T) {
	tgt := Target{Host: "example.com", Port: 443, Scheme: SchemeHTTPS}
	if tgt.String() != "example.com" {
		t.Errorf("String() = %v, want example.com", tgt.String())
	}

	tgt.Port = 8443
	if tgt.String() != "example.com:8443" {
		t.Errorf("String() = %v, want example.com:8443", tgt.String())
	}
}
