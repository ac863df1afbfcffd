// Package rest is the HTTP plumbing every context service shares: a
// low-level JSON client and a declarative service factory that turns a
// verb/path configuration table into callable operations.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
)

// DefaultTimeout bounds a single request; there is exactly one attempt
// per call, no retries and no backoff.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token attached to requests when one
// is present. The session store satisfies it.
type TokenSource interface {
	Token() string
}

// Client builds full URLs from a base plus resource paths, attaches
// headers and auth, and normalizes error handling. Payloads come back
// unwrapped as raw JSON, not as a transport envelope.
type Client struct {
	baseURL string
	prefix  string
	httpc   *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	log     *logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithPrefix sets the API path prefix (e.g. "api/v1") between the base
// URL and resource paths.
func WithPrefix(prefix string) Option {
	return func(c *Client) { c.prefix = strings.Trim(prefix, "/") }
}

// WithTokenSource attaches bearer tokens from the given source.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithRateLimit throttles outgoing requests.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithLogger replaces the default nop logger.
func WithLogger(log *logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (json.RawMessage, error) {
	raw, err := c.doOnce(ctx, method, path, query, body, c.prefix)
	if err == nil {
		return raw, nil
	}
	// One documented fallback, not a retry loop: deployments moving
	// between the mock backend and the real API disagree on the path
	// prefix, so a prefixed GET that 404s is tried once unprefixed.
	if method == http.MethodGet && c.prefix != "" && IsNotFound(err) {
		c.log.Warnw("retrying without api prefix", "path", path)
		return c.doOnce(ctx, method, path, query, body, "")
	}
	return nil, err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body []byte, prefix string) (json.RawMessage, error) {
	reqURL, err := c.buildURL(path, query, prefix)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", method, "url", reqURL, "error", err)
		return nil, &APIError{Code: CodeNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debugw("request done",
		"method", method, "url", reqURL,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, payload)
	}
	if len(payload) == 0 {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(payload), nil
}

func (c *Client) buildURL(path string, query url.Values, prefix string) (string, error) {
	full := c.baseURL
	if prefix != "" {
		full += "/" + prefix
	}
	full += "/" + strings.TrimLeft(path, "/")
	u, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", full, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
