// Package transport provides a small JSON-over-HTTP client with an explicit
// error contract: non-2xx responses surface as *StatusError, undecodable
// bodies wrap ErrDecode, and network failures are returned wrapped.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client issues JSON requests against a base URL.
type Client struct {
	base    *url.URL
	http    *http.Client
	maxBody int64
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client from a finalized configuration.
func New(cfg *Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base_url: %w", err)
	}
	if base.Path == "" {
		base.Path = "/"
	}

	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: cfg.TimeoutDuration()},
		maxBody: cfg.MaxResponseSizeBytes(),
		logger:  logger.With("system", "transport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends a request with no body and decodes a 2xx JSON response into out.
func (c *Client) Do(ctx context.Context, method, path string, out any) error {
	target := c.base.JoinPath(strings.TrimPrefix(path, "/"))

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "url", target.String(), "error", err)
		return fmt.Errorf("%s %s: %w", method, target.Path, err)
	}
	defer resp.Body.Close()

	body := io.Reader(resp.Body)
	if c.maxBody > 0 {
		body = io.LimitReader(resp.Body, c.maxBody+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	tooLarge := c.maxBody > 0 && int64(len(data)) > c.maxBody

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if tooLarge {
			data = data[:c.maxBody]
		}
		return &StatusError{
			Method: method,
			Path:   target.Path,
			Code:   resp.StatusCode,
			Body:   string(data),
		}
	}

	if tooLarge {
		return ErrResponseTooLarge
	}

	c.logger.Debug("request complete", "method", method, "url", target.String(), "status", resp.StatusCode)

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// Request performs a request and decodes the response into a new T.
func Request[T any](ctx context.Context, c *Client, method, path string) (*T, error) {
	var out T
	if err := c.Do(ctx, method, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
