// Package sheets talks to the spreadsheet-backed Apps Script endpoint.
// The whole API is one URL dispatched on an "action" parameter; reads
// are GET query calls, writes are url-encoded POSTs.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Client is a thin HTTP wrapper for the Apps Script endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a gateway client for the given endpoint URL.
func NewClient(endpoint string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		log:      log,
	}
}

// APIError is a service-reported failure: the endpoint answered but the
// script said success:false. Transport and decode failures are plain
// wrapped errors.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed", e.Action)
	}
	return fmt.Sprintf("%s failed: %s", e.Action, e.Message)
}

// Get performs a read call for the given action.
func (c *Client) Get(ctx context.Context, action string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, action)
}

// PostForm performs a write call. The action must be part of the form.
func (c *Client) PostForm(ctx context.Context, action string, form url.Values) ([]byte, error) {
	form.Set("action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, action)
}

func (c *Client) do(req *http.Request, action string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("gateway request failed", zap.String("action", action), zap.Error(err))
		return nil, fmt.Errorf("%s request: %w", action, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("gateway returned error status",
			zap.String("action", action), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s returned %d", action, resp.StatusCode)
	}

	if apiErr := serviceFailure(action, data); apiErr != nil {
		c.log.Warn("gateway reported failure",
			zap.String("action", action), zap.String("error", apiErr.Message))
		return nil, apiErr
	}

	return data, nil
}

// serviceFailure detects a top-level {success:false, error} body. Array
// responses and success bodies pass through.
func serviceFailure(action string, data []byte) *APIError {
	var envelope struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		// Not an object; the caller's decode decides if it is usable.
		return nil
	}
	if envelope.Success != nil && !*envelope.Success {
		return &APIError{Action: action, Message: envelope.Error}
	}
	return nil
}
