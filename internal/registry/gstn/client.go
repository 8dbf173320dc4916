// Package gstn implements the filing-registry client against the public
// GST returns API. Status strings come back as free text; classification
// into filed/not-filed happens downstream in the engine.
package gstn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// Client calls the external GST returns registry over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a registry client from config.
func NewClient(cfg *config.RegistryConfig) *Client {
	return NewClientWithBaseURL(cfg, cfg.BaseURL)
}

// NewClientWithBaseURL creates a client pointing at a custom endpoint (for testing).
func NewClientWithBaseURL(cfg *config.RegistryConfig, baseURL string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ port.FilingRegistry = (*Client)(nil)

type returnsResponse struct {
	EFiledList []struct {
		ReturnType   string `json:"rtntype"`
		TaxPeriod    string `json:"taxp"`
		FilingYear   string `json:"fy"`
		DateOfFiling string `json:"dof"`
		Status       string `json:"status"`
	} `json:"EFiledlist"`
}

// ReturnsByGSTIN fetches the filing history for a GSTIN. Status text is
// returned exactly as the registry sent it.
func (c *Client) ReturnsByGSTIN(ctx context.Context, gstin string) ([]domain.FilingRecord, error) {
	endpoint := fmt.Sprintf("%s/api/v1/taxpayers/%s/returns", c.baseURL, url.PathEscape(gstin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling returns registry: %w", domain.ErrRegistryUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading registry response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("registry error (status %d): %w", resp.StatusCode, domain.ErrRegistryUnavailable)
	}

	var parsed returnsResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding registry response: %w", err)
	}

	records := make([]domain.FilingRecord, 0, len(parsed.EFiledList))
	for _, entry := range parsed.EFiledList {
		records = append(records, domain.FilingRecord{
			ReturnType:   entry.ReturnType,
			TaxPeriod:    entry.TaxPeriod,
			FilingYear:   entry.FilingYear,
			DateOfFiling: entry.DateOfFiling,
			Status:       entry.Status,
		})
	}
	return records, nil
}
