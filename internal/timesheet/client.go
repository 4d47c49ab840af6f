// Package timesheet talks to the save and submit record services and turns
// their responses into the weekly view model: an HTTP client per service, a
// reconciler that merges both sources into one week of entries, and a
// dispatcher that walks the entries back out as individual writes.
package timesheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

// RecordStore is the contract both record services satisfy. The reconciler
// and dispatcher depend on this, not on the HTTP client, so tests can swap
// in fakes.
type RecordStore interface {
	// Healthy probes the service's health endpoint. Any transport error
	// or non-2xx status counts as unhealthy.
	Healthy(ctx context.Context) bool

	// Records fetches the employee's records for [start, end], inclusive
	// calendar dates.
	Records(ctx context.Context, employeeID string, start, end time.Time) ([]models.Record, error)

	// Write persists a single record.
	Write(ctx context.Context, rec models.Record) error
}

// Client is an HTTP RecordStore. The same type serves both collaborators;
// only the base URL and path prefix differ ("save-service" on port 3000,
// "submit-service" on 3001 in the default deployment).
type Client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

// NewClient creates a client for one record service.
func NewClient(baseURL, prefix string) *Client {
	return &Client{
		baseURL: baseURL,
		prefix:  prefix,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/health", c.baseURL, c.prefix), nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// recordsResponse is the envelope both services wrap their lists in.
type recordsResponse struct {
	Data []models.Record `json:"data"`
}

func (c *Client) Records(ctx context.Context, employeeID string, start, end time.Time) ([]models.Record, error) {
	params := url.Values{}
	params.Set("employeeId", employeeID)
	params.Set("startDate", start.Format(constants.DateFormat))
	params.Set("endDate", end.Format(constants.DateFormat))

	endpoint := fmt.Sprintf("%s/%s/timesheets?%s", c.baseURL, c.prefix, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.prefix, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serviceError(c.prefix, resp.StatusCode, body)
	}

	var page recordsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", c.prefix, err)
	}
	return page.Data, nil
}

func (c *Client) Write(ctx context.Context, rec models.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/timesheets", c.baseURL, c.prefix)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.prefix, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serviceError(c.prefix, resp.StatusCode, body)
	}
	return nil
}

// serviceError builds an error from a non-2xx response, preferring the
// server's message field over the bare status.
func serviceError(prefix string, status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s: %s", prefix, payload.Message)
	}
	return fmt.Errorf("%s: %s", prefix, http.StatusText(status))
}
