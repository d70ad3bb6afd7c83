package initcmd

import (
	"testing"
)

func TestValidateTargetURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid https", "https://example.com", false},
		{"valid with port", "https://example.com:8443", false},
		{"valid with path", "https://example.com/login", false},
		{"valid http", "http://example.com", false},
		{"empty", "", true},
		{"missing host", "https://", true},
		{"port out of range", "https://example.com:70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetURL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTargetURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"valid https", "https://collector.example.com", false},
		{"valid http", "http://localhost:3000", false},
		{"valid with path", "https://collector.example.com/v1", false},
		{"empty (disabled)", "", false},
		{"missing scheme", "collector.example.com", true},
		{"ftp scheme", "ftp://example.com", true},
		{"invalid url", "not a url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEndpoint(tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEndpoint(%q) error = %v, wantErr %v", tt.endpoint, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExpireDays(t *testing.T) {
	tests := []struct {
		name    string
		daysStr string
		wantErr bool
	}{
		{"valid 30", "30", false},
		{"valid zero", "0", false},
		{"valid large", "365", false},
		{"negative", "-1", true},
		{"too large", "10000", true},
		{"not a number", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpireDays(tt.daysStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExpireDays(%q) error = %v, wantErr %v", tt.daysStr, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		name       string
		timeoutStr string
		wantErr    bool
	}{
		{"valid 10s", "10s", false},
		{"valid 1m", "1m", false},
		{"empty (default)", "", false},
		{"below 1s", "500ms", true},
		{"not a duration", "ten seconds", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeout(tt.timeoutStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeout(%q) error = %v, wantErr %v", tt.timeoutStr, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCAFile(t *testing.T) {
	if err := ValidateCAFile("ca.pem"); err != nil {
		t.Errorf("ValidateCAFile(\"ca.pem\") error = %v, want nil", err)
	}
	if err := ValidateCAFile(""); err == nil {
		t.Error("ValidateCAFile(\"\") = nil, want error")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative", "./certaudit.yaml", false},
		{"valid current dir", "certaudit.yaml", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
