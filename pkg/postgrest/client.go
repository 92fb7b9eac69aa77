// Package postgrest stores alerts in a hosted Supabase table through its
// PostgREST interface.
package postgrest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"liyu1981.xyz/trade-alerts/pkg/common"
)

const (
	maxResponseBytes  = 8 << 20 // 8 MiB
	maxErrorBodyBytes = 32 << 10
	defaultTimeout    = 30 * time.Second
)

type Config struct {
	URL     string
	Key     string
	Timeout time.Duration
}

type Client struct {
	url        string
	key        string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%s is required", common.EnvKeySupabaseURL)
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("%s is required", common.EnvKeySupabaseKey)
	}
	parsed, err := neturl.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute URL", common.EnvKeySupabaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		url:        strings.TrimRight(cfg.URL, "/"),
		key:        cfg.Key,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// APIError is a non-2xx answer from the REST endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase API error %d: %s", e.StatusCode, e.Body)
}

// request calls /rest/v1/<table> and returns the raw response body.
func (c *Client) request(ctx context.Context, method, table string, query neturl.Values, body interface{}) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.url, neturl.PathEscape(table))
	if len(query) > 0 {
		url += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return respBody, nil
}

func (c *Client) requestRows(ctx context.Context, method, table string, query neturl.Values, body interface{}) ([]map[string]interface{}, error) {
	respBody, err := c.request(ctx, method, table, query, body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}
