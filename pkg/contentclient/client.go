// Package contentclient provides the main entry point for creating
// content API clients.
package contentclient

import (
	"fmt"

	"github.com/contentkit-io/contentkit/internal/client"
	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// New creates a new content API client. The base URL must be an absolute
// http or https URL; validation failures surface before any network
// activity.
func New(config *content.Config) (content.Client, error) {
	if config == nil {
		return nil, content.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// NewWithAPIToken creates a client authenticating with a static API token.
func NewWithAPIToken(baseURL, token string) (content.Client, error) {
	return New(&content.Config{
		BaseURL: baseURL,
		Auth: &content.AuthConfig{
			Strategy: constants.StrategyAPIToken,
			Options:  map[string]interface{}{"token": token},
		},
	})
}

// NewWithCredentials creates a client that exchanges user credentials for
// a session token on first use.
func NewWithCredentials(baseURL, identifier, password string) (content.Client, error) {
	return New(&content.Config{
		BaseURL: baseURL,
		Auth: &content.AuthConfig{
			Strategy: constants.StrategyUsersPermissions,
			Options: map[string]interface{}{
				"identifier": identifier,
				"password":   password,
			},
		},
	})
}
