// Package arcade is a client for the Arcade tool-management API. Every call
// goes through a retrying executor that backs off exponentially on network
// failures and 5xx responses and gives up immediately on 4xx responses.
package arcade

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const userAgent = "arcade-dashboard/1.0"

// Client is a configured Arcade API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	cfg      Config
	executor *Executor
	logger   *slog.Logger
}

// Option customizes a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	transport  Transport
	httpClient *http.Client
	sleep      Sleeper
	logger     *slog.Logger
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithSleeper replaces the backoff sleep.
func WithSleeper(s Sleeper) Option {
	return func(o *clientOptions) { o.sleep = s }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient validates cfg and returns a ready client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.transport == nil {
		o.transport = NewHTTPTransport(o.httpClient, cfg.Timeout)
	}

	return &Client{
		cfg:      cfg,
		executor: NewExecutor(o.transport, cfg, o.sleep, o.logger),
		logger:   o.logger,
	}, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// GetRaw issues an authenticated GET for path and returns the raw JSON body.
func (c *Client) GetRaw(ctx context.Context, path string, params Params) (json.RawMessage, error) {
	u, err := BuildURL(c.cfg.BaseURL, path, params)
	if err != nil {
		return nil, &APIError{Code: "RequestError", Message: err.Error(), Kind: KindConfig, cause: err}
	}
	return c.executor.Execute(ctx, Request{
		Method: http.MethodGet,
		URL:    u,
		Header: c.headers(),
	})
}

// Get issues an authenticated GET for path and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, params Params, out any) error {
	body, err := c.GetRaw(ctx, path, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return newParseError("decode %s: %v", path, err)
	}
	return nil
}

// Get is the typed form of Client.Get.
func Get[T any](ctx context.Context, c *Client, path string, params Params) (T, error) {
	var out T
	err := c.Get(ctx, path, params, &out)
	return out, err
}

func (c *Client) headers() http.Header {
	h := make(http.Header, 4)
	h.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.APIKey))
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("User-Agent", userAgent)
	return h
}
