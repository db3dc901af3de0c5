// Package http implements the SDK's core request lifecycle: base-URL
// resolution, static headers, the request/response interceptor phases,
// per-request timeout enforcement, and the raw path used by credential
// handshakes.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/internal/urlx"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// Client executes requests against a single logical backend. It owns the
// validated base URL, the per-request timeout, static headers, and the two
// interceptor chains. It performs exactly one network attempt per request;
// callers own any retry policy.
type Client struct {
	baseURL   string
	timeout   time.Duration
	headers   map[string]string
	userAgent string
	debug     bool
	logger    content.Logger

	requestInterceptors  *content.InterceptorManager[content.RequestEnvelope]
	responseInterceptors *content.InterceptorManager[content.ResponseEnvelope]

	httpClient *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeaders sets static headers appended to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger content.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured
// logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a client for the given base URL. The URL is validated
// against the http/https allow-list and stored without a trailing slash;
// construction fails on a bad URL before any network activity.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if err := urlx.Validate(baseURL); err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:              urlx.TrimBase(baseURL),
		timeout:              constants.DefaultTimeout,
		headers:              make(map[string]string),
		userAgent:            constants.DefaultUserAgent,
		requestInterceptors:  content.NewInterceptorManager[content.RequestEnvelope](),
		responseInterceptors: content.NewInterceptorManager[content.ResponseEnvelope](),
		httpClient:           newTransport(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout <= 0 {
		return nil, &content.ValidationError{Message: "timeout must be a positive duration"}
	}

	return client, nil
}

// newTransport builds the underlying HTTP client. Retries are pinned off:
// the request lifecycle is single-attempt by design.
func newTransport() *retryablehttp.Client {
	transport := retryablehttp.NewClient()
	transport.HTTPClient = cleanhttp.DefaultPooledClient()
	transport.RetryMax = 0
	transport.Logger = nil

	return transport
}

// BaseURL returns the validated, slash-trimmed base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetBaseURL re-validates and replaces the base URL.
func (c *Client) SetBaseURL(baseURL string) error {
	if err := urlx.Validate(baseURL); err != nil {
		return err
	}

	c.baseURL = urlx.TrimBase(baseURL)

	return nil
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SetTimeout replaces the per-request timeout.
func (c *Client) SetTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return &content.ValidationError{Message: "timeout must be a positive duration"}
	}

	c.timeout = timeout

	return nil
}

// RequestInterceptors returns the request-phase chain.
func (c *Client) RequestInterceptors() *content.InterceptorManager[content.RequestEnvelope] {
	return c.requestInterceptors
}

// ResponseInterceptors returns the response-phase chain.
func (c *Client) ResponseInterceptors() *content.InterceptorManager[content.ResponseEnvelope] {
	return c.responseInterceptors
}

// Do runs the full request lifecycle: path normalization, static headers,
// the request chain, one network attempt under the client timeout, and the
// response chain. Failures from the network attempt or the response chain
// are folded through the response chain's recovery handlers before being
// returned.
func (c *Client) Do(ctx context.Context, req *content.Request) (*content.Response, error) {
	if req == nil {
		return nil, &content.SDKError{Message: "request is required"}
	}

	c.prepare(req)

	env, err := c.requestInterceptors.Execute(ctx, content.RequestEnvelope{Request: req})
	if err != nil {
		return nil, err
	}

	resp, err := c.perform(ctx, env.Request)
	if err != nil {
		return nil, c.responseInterceptors.Reject(ctx, err)
	}

	respEnv, err := c.responseInterceptors.Execute(ctx, content.ResponseEnvelope{
		Request:  env.Request,
		Response: resp,
	})
	if err != nil {
		return nil, c.responseInterceptors.Reject(ctx, err)
	}

	return respEnv.Response, nil
}

// RawJSON issues a request over the non-intercepted path, still under the
// client's base URL, static headers, and timeout. Non-2xx responses map
// directly to typed errors. Credential handshakes use this path so they
// cannot recursively trigger pre-flight authentication.
func (c *Client) RawJSON(ctx context.Context, method, path string, body, out interface{}) error {
	req := &content.Request{Method: method, Path: path}

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		req.Body = data
		req.Headers = make(nethttp.Header)
		req.Headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	c.prepare(req)

	resp, err := c.perform(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return content.NewHTTPStatusError(resp.StatusCode, resp.Status, req.Method, req.URL, resp.Body)
	}

	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("parsing response body: %w", err)
		}
	}

	return nil
}

// Get issues a GET request through the full lifecycle.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*content.Response, error) {
	return c.Do(ctx, &content.Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*content.Response, error) {
	return c.doJSON(ctx, nethttp.MethodPost, path, body)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*content.Response, error) {
	return c.doJSON(ctx, nethttp.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*content.Response, error) {
	return c.Do(ctx, &content.Request{Method: nethttp.MethodDelete, Path: path})
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) (*content.Response, error) {
	req := &content.Request{Method: method, Path: path}

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		req.Body = data
	}

	return c.Do(ctx, req)
}

// Fork derives a new client. Fields left unset in overrides (base URL,
// timeout, headers) default to this client's values; the underlying
// transport is shared. When inheritInterceptors is true both chains are
// cloned, so mutations on the fork never affect the parent or vice versa.
func (c *Client) Fork(overrides *content.Config, inheritInterceptors bool) (*Client, error) {
	fork := &Client{
		baseURL:              c.baseURL,
		timeout:              c.timeout,
		headers:              make(map[string]string, len(c.headers)),
		userAgent:            c.userAgent,
		debug:                c.debug,
		logger:               c.logger,
		requestInterceptors:  content.NewInterceptorManager[content.RequestEnvelope](),
		responseInterceptors: content.NewInterceptorManager[content.ResponseEnvelope](),
		httpClient:           c.httpClient,
	}

	for key, value := range c.headers {
		fork.headers[key] = value
	}

	if overrides != nil {
		if overrides.BaseURL != "" {
			if err := fork.SetBaseURL(overrides.BaseURL); err != nil {
				return nil, err
			}
		}

		if overrides.Timeout > 0 {
			fork.timeout = overrides.Timeout
		}

		if overrides.Headers != nil {
			fork.headers = make(map[string]string, len(overrides.Headers))
			for key, value := range overrides.Headers {
				fork.headers[key] = value
			}
		}
	}

	if inheritInterceptors {
		fork.requestInterceptors = c.requestInterceptors.Clone()
		fork.responseInterceptors = c.responseInterceptors.Clone()
	}

	return fork, nil
}

// prepare normalizes the path to a single leading slash, resolves the
// absolute URL, and appends static headers without overwriting headers the
// caller already set.
func (c *Client) prepare(req *content.Request) {
	if req.Method == "" {
		req.Method = nethttp.MethodGet
	}

	req.Path = urlx.FormatPath(req.Path, urlx.SlashSingle, urlx.SlashKeep)

	if req.Headers == nil {
		req.Headers = make(nethttp.Header)
	}

	for key, value := range c.headers {
		if req.Headers.Get(key) == "" {
			req.Headers.Set(key, value)
		}
	}

	if c.userAgent != "" && req.Headers.Get(constants.HeaderUserAgent) == "" {
		req.Headers.Set(constants.HeaderUserAgent, c.userAgent)
	}

	req.URL = c.baseURL + req.Path
	if len(req.Query) > 0 {
		req.URL += "?" + req.Query.Encode()
	}
}

// perform executes one network attempt under a fresh timeout context. The
// timeout supersedes any deadline an interceptor attached; the timer is
// released on every path.
func (c *Client) perform(ctx context.Context, req *content.Request) (*content.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"status_code": httpResp.StatusCode,
		})
	}

	return &content.Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       data,
	}, nil
}
