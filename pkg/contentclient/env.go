package contentclient

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// envPrefix namespaces the environment variables read by NewFromEnv.
const envPrefix = "CONTENT"

// EnvConfig reads client configuration from the environment:
//
//	CONTENT_BASE_URL     base URL (required)
//	CONTENT_TIMEOUT      per-request timeout, e.g. "10s"
//	CONTENT_API_TOKEN    selects the api-token strategy
//	CONTENT_IDENTIFIER   with CONTENT_PASSWORD, selects users-permissions
//	CONTENT_PASSWORD
//	CONTENT_USER_AGENT   User-Agent override
//	CONTENT_DEBUG        enables debug logging
//
// A token takes precedence over credentials when both are set.
func EnvConfig() (*content.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	baseURL := v.GetString("base_url")
	if baseURL == "" {
		return nil, fmt.Errorf("%w (set %s_BASE_URL)", content.ErrBaseURLRequired, envPrefix)
	}

	config := &content.Config{
		BaseURL:   baseURL,
		Timeout:   v.GetDuration("timeout"),
		UserAgent: v.GetString("user_agent"),
		Debug:     v.GetBool("debug"),
	}

	switch {
	case v.GetString("api_token") != "":
		config.Auth = &content.AuthConfig{
			Strategy: constants.StrategyAPIToken,
			Options:  map[string]interface{}{"token": v.GetString("api_token")},
		}
	case v.GetString("identifier") != "":
		config.Auth = &content.AuthConfig{
			Strategy: constants.StrategyUsersPermissions,
			Options: map[string]interface{}{
				"identifier": v.GetString("identifier"),
				"password":   v.GetString("password"),
			},
		}
	}

	return config, nil
}

// NewFromEnv creates a client from environment variables.
func NewFromEnv() (content.Client, error) {
	config, err := EnvConfig()
	if err != nil {
		return nil, err
	}

	return New(config)
}
