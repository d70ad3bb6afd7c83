// Package report ships emitted findings to an optional collector endpoint.
package report

import "time"

// FindingData is a single finding in the report payload.
type FindingData struct {
	EmittedAt   time.Time `json:"emitted_at"`
	Kind        string    `json:"kind"`
	Severity    string    `json:"severity"`
	Name        string    `json:"name"`
	Target      string    `json:"target"`
	Description string    `json:"description"`
}

// SubmitRequest is the payload POSTed to the collector.
type SubmitRequest struct {
	ScannerVersion string        `json:"scanner_version,omitempty"`
	Findings       []FindingData `json:"findings"`
}

// SubmitResponse is the collector's acknowledgement.
type SubmitResponse struct {
	Error    *APIError `json:"error,omitempty"`
	Accepted int       `json:"accepted"`
	Success  bool      `json:"success"`
}

// APIError represents a collector error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
