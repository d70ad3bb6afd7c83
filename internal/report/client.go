package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/certaudit-io/certaudit/internal/finding"
	"github.com/certaudit-io/certaudit/internal/version"
)

// Client POSTs finding batches to a collector endpoint.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	endpoint   string
}

// New creates a report Client for the given endpoint.
func New(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Submit sends the findings to the collector. Delivery is at-least-once from
// the caller's perspective: on error the caller decides whether to retry.
func (c *Client) Submit(ctx context.Context, findings []finding.Finding) (*SubmitResponse, error) {
	req := &SubmitRequest{
		ScannerVersion: version.GetVersion(),
		Findings:       make([]FindingData, 0, len(findings)),
	}
	for _, f := range findings {
		req.Findings = append(req.Findings, FindingData{
			Kind:        string(f.Kind),
			Severity:    string(f.Severity),
			Name:        f.Name,
			Target:      f.Target.String(),
			Description: f.Description,
			EmittedAt:   f.EmittedAt,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v1/findings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", fmt.Sprintf("certaudit/%s", version.GetVersion()))

	c.logger.Debug("submitting findings",
		zap.String("endpoint", c.endpoint),
		zap.Int("count", len(findings)),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp SubmitResponse
		if unmarshalErr := json.Unmarshal(respBody, &errResp); unmarshalErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("collector error (%s): %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("collector returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var submitResp SubmitResponse
	if err := json.Unmarshal(respBody, &submitResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &submitResp, nil
}
