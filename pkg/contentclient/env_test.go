package contentclient_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit-io/contentkit/pkg/content"
	"github.com/contentkit-io/contentkit/pkg/contentclient"
)

func TestEnvConfig(t *testing.T) {
	t.Run("base URL is required", func(t *testing.T) {
		_, err := contentclient.EnvConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, content.ErrBaseURLRequired)
		assert.Contains(t, err.Error(), "CONTENT_BASE_URL")
	})

	t.Run("token strategy", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "http://localhost:1337")
		t.Setenv("CONTENT_API_TOKEN", "abc")
		t.Setenv("CONTENT_TIMEOUT", "15s")

		config, err := contentclient.EnvConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:1337", config.BaseURL)
		assert.Equal(t, 15*time.Second, config.Timeout)
		require.NotNil(t, config.Auth)
		assert.Equal(t, "api-token", config.Auth.Strategy)
		assert.Equal(t, "abc", config.Auth.Options["token"])
	})

	t.Run("credential strategy", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "http://localhost:1337")
		t.Setenv("CONTENT_IDENTIFIER", "reader@example.com")
		t.Setenv("CONTENT_PASSWORD", "s3cret")

		config, err := contentclient.EnvConfig()
		require.NoError(t, err)

		require.NotNil(t, config.Auth)
		assert.Equal(t, "users-permissions", config.Auth.Strategy)
		assert.Equal(t, "reader@example.com", config.Auth.Options["identifier"])
		assert.Equal(t, "s3cret", config.Auth.Options["password"])
	})

	t.Run("token takes precedence over credentials", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "http://localhost:1337")
		t.Setenv("CONTENT_API_TOKEN", "abc")
		t.Setenv("CONTENT_IDENTIFIER", "reader@example.com")
		t.Setenv("CONTENT_PASSWORD", "s3cret")

		config, err := contentclient.EnvConfig()
		require.NoError(t, err)

		require.NotNil(t, config.Auth)
		assert.Equal(t, "api-token", config.Auth.Strategy)
	})

	t.Run("no auth variables leaves auth unset", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "http://localhost:1337")

		config, err := contentclient.EnvConfig()
		require.NoError(t, err)
		assert.Nil(t, config.Auth)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("builds a working client", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "http://localhost:1337")
		t.Setenv("CONTENT_API_TOKEN", "abc")

		client, err := contentclient.NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("propagates validation failures", func(t *testing.T) {
		t.Setenv("CONTENT_BASE_URL", "not a url")

		_, err := contentclient.NewFromEnv()
		require.Error(t, err)
	})
}
