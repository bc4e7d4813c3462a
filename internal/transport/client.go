// Package transport is the HTTP client for the property API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// ErrNotFound is returned by GetProperty on a 404.
var ErrNotFound = errors.New("property not found")

// StatusError reports a non-2xx response whose body could not be used.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API rooted at baseURL. Timeout 0 means none.
func New(baseURL string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: log.Named("transport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCategories returns the decoded body of GET /api/categories. Validation
// of the tree is left to the caller.
func (c *Client) FetchCategories(ctx context.Context) (*contract.CategoriesResponse, error) {
	var body contract.CategoriesResponse
	status, err := c.do(ctx, http.MethodGet, "/api/categories", nil, &body)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &StatusError{StatusCode: status}
	}
	return &body, nil
}

// SubmitProperty posts payload. Any response with a JSON body is returned,
// with Success forced to false for non-2xx statuses. Unreachable servers and
// unreadable bodies are errors.
func (c *Client) SubmitProperty(ctx context.Context, payload *contract.PropertyPayload) (*contract.SubmitResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var body contract.SubmitResponse
	status, err := c.do(ctx, http.MethodPost, "/api/properties", data, &body)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		body.Success = false
	}
	return &body, nil
}

// ListProperties returns the stored listings in server order.
func (c *Client) ListProperties(ctx context.Context) (*contract.ListResponse, error) {
	var body contract.ListResponse
	status, err := c.do(ctx, http.MethodGet, "/api/properties", nil, &body)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &StatusError{StatusCode: status, Body: body.Message}
	}
	return &body, nil
}

// GetProperty fetches one listing. A 404 is ErrNotFound.
func (c *Client) GetProperty(ctx context.Context, id string) (*contract.GetResponse, error) {
	var body contract.GetResponse
	status, err := c.do(ctx, http.MethodGet, "/api/properties/"+url.PathEscape(id), nil, &body)
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &StatusError{StatusCode: status, Body: body.Message}
	}
	return &body, nil
}

// do sends the request and decodes the JSON body into out. The status code is
// returned even when decoding fails.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("Malformed response body",
			zap.String("path", path), zap.Int("status", resp.StatusCode), zap.Error(err))
		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 200)}
	}
	c.logger.Debug("Request done", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
	return resp.StatusCode, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
