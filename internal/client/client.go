package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production marketplace endpoint used when no base
// URL is configured.
const DefaultBaseURL = "https://api.agentmart.dev/api"

const defaultTimeout = 30 * time.Second

// Config holds the settings needed to construct a Client.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the root of the marketplace API. Defaults to DefaultBaseURL.
	BaseURL string

	// AgentID optionally identifies the calling agent via the X-Agent-ID
	// header.
	AgentID string

	// HTTPClient is an optional custom HTTP client. If nil, a default client
	// with a 30-second timeout is used.
	HTTPClient *http.Client

	// Timeout applies to the default HTTP client only.
	Timeout time.Duration
}

// Client is an HTTP client for the marketplace API. All methods are safe
// for concurrent use; each call performs exactly one network exchange.
type Client struct {
	baseURL    string
	apiKey     string
	agentID    string
	httpClient *http.Client
}

// New creates a Client from the given configuration. It fails immediately,
// before any I/O, when the API key is empty.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		agentID:    cfg.AgentID,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestOption func(*http.Request)

// withHeader sets an extra request header. Callers may override any default
// header except X-API-Key, which do re-applies last so it cannot be
// dropped or overwritten.
func withHeader(key, value string) requestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// do performs one API exchange: build request, attach headers, send, parse
// the body as JSON regardless of status, and decode 2xx responses into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return newTransportError("marshal request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return newTransportError("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.agentID != "" {
		req.Header.Set("X-Agent-ID", c.agentID)
	}
	for _, opt := range opts {
		opt(req)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(req.Method+" "+req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError("read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, normalizeBody(raw))
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return newTransportError("decode response body", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) post(ctx context.Context, path string, body, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) put(ctx context.Context, path string, body, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

// normalizeBody keeps error bodies useful even when the backend returns
// non-JSON text for a failure status.
func normalizeBody(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return trimmed
	}
	quoted, _ := json.Marshal(string(trimmed))
	return quoted
}
