// Package transport is the HTTP client for the remote rating service.
//
// The service exposes one resource: GET returns the full rating mapping and
// POST {name, star} stores one rating and returns the full updated mapping.
package transport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// DefaultHTTPTimeout is zero: rating calls rely on the caller's context.
var DefaultHTTPTimeout time.Duration

// Client talks to a rating service. It implements ratings.Remote.
type Client struct {
	http     *http.Client
	auth     Authenticator
	apiKey   string
	endpoint string
	logger   *zerolog.Logger
}

var _ ratings.Remote = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithAuth applies apiKey to every request through auth.
func WithAuth(auth Authenticator, apiKey string) Option {
	return func(c *Client) {
		c.auth = auth
		c.apiKey = apiKey
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the service at baseURL. The ratings path is
// appended unless baseURL already ends with it.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.NewConfigError("transport", "rating service URL is required", nil)
	}
	endpoint := baseURL
	if !strings.HasSuffix(endpoint, constants.RatingsPath) {
		endpoint += constants.RatingsPath
	}

	c := &Client{
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
		auth:     &NoAuth{},
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Default()
	}
	return c, nil
}

// Endpoint returns the ratings resource URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch returns the full rating mapping.
func (c *Client) Fetch(ctx context.Context) (ratings.Mapping, error) {
	req, err := newRequest(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	var m ratings.Mapping
	if err := c.roundTrip(req, &m); err != nil {
		return nil, err
	}
	return normalize(m), nil
}

// Set stores one rating and returns the full updated mapping.
func (c *Client) Set(ctx context.Context, name string, star ratings.Rating) (ratings.Mapping, error) {
	req, err := newRequest(ctx, http.MethodPost, c.endpoint, SetRequest{Name: name, Star: star})
	if err != nil {
		return nil, err
	}
	var m ratings.Mapping
	if err := c.roundTrip(req, &m); err != nil {
		return nil, err
	}
	return normalize(m), nil
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

func (c *Client) roundTrip(req *http.Request, target any) error {
	start := time.Now()
	resp, err := c.Do(req)
	if err != nil {
		return errors.WrapRemote(req.Method, c.endpoint, err)
	}

	err = DecodeResponse(resp, target)
	c.logger.Debug().
		Str("method", req.Method).
		Str("endpoint", c.endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("rating service call")
	return err
}

func normalize(m ratings.Mapping) ratings.Mapping {
	if m == nil {
		return ratings.Mapping{}
	}
	return m
}
