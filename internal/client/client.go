// Package client assembles the HTTP core, the auth manager, and the
// resource managers into the public content.Client.
package client

import (
	"fmt"

	"github.com/contentkit-io/contentkit/internal/auth"
	"github.com/contentkit-io/contentkit/internal/http"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// Client implements the content.Client interface.
type Client struct {
	httpClient  *http.Client
	authManager *auth.Manager
	logger      content.Logger
}

// New creates a client from the given configuration. Construction either
// fully succeeds or fully fails: base-URL and auth-option validation run
// here, before any network activity.
func New(config *content.Config) (*Client, error) {
	if config == nil {
		return nil, content.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, content.ErrBaseURLRequired
	}

	httpClient, err := http.NewClient(config.BaseURL, httpOptions(config)...)
	if err != nil {
		return nil, err
	}

	manager := auth.NewManager(nil)

	if config.Auth != nil {
		if err := manager.SetStrategy(config.Auth.Strategy, config.Auth.Options); err != nil {
			return nil, fmt.Errorf("configuring authentication: %w", err)
		}
	}

	client := &Client{
		httpClient:  httpClient,
		authManager: manager,
		logger:      config.Logger,
	}

	wireInterceptors(httpClient, manager)

	return client, nil
}

// httpOptions builds HTTP client options from config.
func httpOptions(config *content.Config) []http.Option {
	var opts []http.Option

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if len(config.Headers) > 0 {
		opts = append(opts, http.WithHeaders(config.Headers))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	return opts
}

// wireInterceptors registers the standard chains. The registration
// sequence is load-bearing: the auth pre-flight must run before default
// headers, and status mapping must run before the unauthorized observer.
func wireInterceptors(httpClient *http.Client, manager *auth.Manager) {
	httpClient.RequestInterceptors().
		Use(http.AuthRequestInterceptor(manager, httpClient), nil).
		Use(http.DefaultContentTypeInterceptor(), nil).
		Use(content.RequestIDInterceptor(), nil)

	httpClient.ResponseInterceptors().
		Use(http.StatusErrorInterceptor(), nil)

	fulfilled, rejected := http.UnauthorizedObserver(manager)
	httpClient.ResponseInterceptors().Use(fulfilled, rejected)
}

// Collection implements content.Client.Collection.
func (c *Client) Collection(resource string) content.CollectionClient {
	return NewCollectionManager(c.httpClient, resource)
}

// Single implements content.Client.Single.
func (c *Client) Single(resource string) content.SingleClient {
	return NewSingleManager(c.httpClient, resource)
}

// Fork implements content.Client.Fork. The fork shares this client's auth
// manager: inherited interceptor entries close over it, so authentication
// state stays coherent across derived clients. A fork that does not
// inherit interceptors gets the standard chains wired fresh.
func (c *Client) Fork(overrides *content.Config, inheritInterceptors bool) (content.Client, error) {
	httpFork, err := c.httpClient.Fork(overrides, inheritInterceptors)
	if err != nil {
		return nil, fmt.Errorf("forking client: %w", err)
	}

	if !inheritInterceptors {
		wireInterceptors(httpFork, c.authManager)
	}

	return &Client{
		httpClient:  httpFork,
		authManager: c.authManager,
		logger:      c.logger,
	}, nil
}

// HTTPClient exposes the underlying HTTP client for advanced use
// (registering custom interceptors, issuing raw requests).
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// AuthManager exposes the auth manager.
func (c *Client) AuthManager() *auth.Manager {
	return c.authManager
}
