package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit-io/contentkit/pkg/content"
)

// fakeRequester records raw requests and plays back a canned handler.
type fakeRequester struct {
	calls   int
	method  string
	path    string
	body    interface{}
	handler func(out interface{}) error
}

func (r *fakeRequester) RawJSON(ctx context.Context, method, path string, body, out interface{}) error {
	r.calls++
	r.method = method
	r.path = path
	r.body = body

	if r.handler != nil {
		return r.handler(out)
	}

	return nil
}

func TestAPITokenProvider(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		provider, err := NewAPITokenProvider(map[string]interface{}{"token": "abc"})
		require.NoError(t, err)

		assert.Equal(t, "api-token", provider.Name())
		assert.Equal(t, map[string]string{"Authorization": "Bearer abc"}, provider.Headers())
	})

	t.Run("authenticate is a no-op", func(t *testing.T) {
		t.Parallel()

		provider, err := NewAPITokenProvider(map[string]interface{}{"token": "abc"})
		require.NoError(t, err)

		requester := &fakeRequester{}
		require.NoError(t, provider.Authenticate(context.Background(), requester))
		assert.Zero(t, requester.calls)
	})

	t.Run("rejects malformed options", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			options map[string]interface{}
		}{
			{"missing token", map[string]interface{}{}},
			{"nil token", map[string]interface{}{"token": nil}},
			{"non-string token", map[string]interface{}{"token": 42}},
			{"blank token", map[string]interface{}{"token": "   "}},
		}

		for _, tt := range tests {
			_, err := NewAPITokenProvider(tt.options)
			require.Error(t, err, tt.name)

			validation := &content.ValidationError{}
			assert.True(t, errors.As(err, &validation), tt.name)
		}
	})
}

func TestUsersPermissionsProvider(t *testing.T) {
	t.Parallel()

	options := map[string]interface{}{
		"identifier": "reader@example.com",
		"password":   "s3cret",
	}

	t.Run("rejects malformed options", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			options map[string]interface{}
		}{
			{"missing identifier", map[string]interface{}{"password": "x"}},
			{"missing password", map[string]interface{}{"identifier": "x"}},
			{"non-string identifier", map[string]interface{}{"identifier": 1, "password": "x"}},
			{"non-string password", map[string]interface{}{"identifier": "x", "password": true}},
		}

		for _, tt := range tests {
			_, err := NewUsersPermissionsProvider(tt.options)
			require.Error(t, err, tt.name)

			validation := &content.ValidationError{}
			assert.True(t, errors.As(err, &validation), tt.name)
		}
	})

	t.Run("headers are empty before authentication", func(t *testing.T) {
		t.Parallel()

		provider, err := NewUsersPermissionsProvider(options)
		require.NoError(t, err)

		assert.Equal(t, "users-permissions", provider.Name())
		assert.Empty(t, provider.Headers())
	})

	t.Run("exchanges credentials and stores the token", func(t *testing.T) {
		t.Parallel()

		provider, err := NewUsersPermissionsProvider(options)
		require.NoError(t, err)

		requester := &fakeRequester{handler: func(out interface{}) error {
			result := out.(*struct {
				JWT string `json:"jwt"`
			})
			result.JWT = "session-token"

			return nil
		}}

		require.NoError(t, provider.Authenticate(context.Background(), requester))

		assert.Equal(t, 1, requester.calls)
		assert.Equal(t, "POST", requester.method)
		assert.Equal(t, "/auth/local", requester.path)
		assert.Equal(t, map[string]string{
			"identifier": "reader@example.com",
			"password":   "s3cret",
		}, requester.body)
		assert.Equal(t, map[string]string{"Authorization": "Bearer session-token"}, provider.Headers())
	})

	t.Run("a failed exchange is an error", func(t *testing.T) {
		t.Parallel()

		provider, err := NewUsersPermissionsProvider(options)
		require.NoError(t, err)

		exchangeErr := errors.New("exchange refused")
		requester := &fakeRequester{handler: func(out interface{}) error {
			return exchangeErr
		}}

		err = provider.Authenticate(context.Background(), requester)
		require.Error(t, err)
		assert.ErrorIs(t, err, exchangeErr)
		assert.Empty(t, provider.Headers())
	})

	t.Run("a response without a token is an error", func(t *testing.T) {
		t.Parallel()

		provider, err := NewUsersPermissionsProvider(options)
		require.NoError(t, err)

		requester := &fakeRequester{handler: func(out interface{}) error {
			return nil
		}}

		err = provider.Authenticate(context.Background(), requester)
		require.Error(t, err)
		assert.Empty(t, provider.Headers())
	})
}

func TestFactory(t *testing.T) {
	t.Parallel()

	t.Run("default strategies are registered", func(t *testing.T) {
		t.Parallel()

		factory := DefaultFactory()

		provider, err := factory.Create("api-token", map[string]interface{}{"token": "abc"})
		require.NoError(t, err)
		assert.Equal(t, "api-token", provider.Name())

		provider, err = factory.Create("users-permissions", map[string]interface{}{
			"identifier": "a", "password": "b",
		})
		require.NoError(t, err)
		assert.Equal(t, "users-permissions", provider.Name())
	})

	t.Run("unregistered strategy names the offender", func(t *testing.T) {
		t.Parallel()

		_, err := DefaultFactory().Create("nonexistent", map[string]interface{}{})
		require.Error(t, err)

		sdkErr := &content.SDKError{}
		require.True(t, errors.As(err, &sdkErr))
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("re-registering replaces the constructor", func(t *testing.T) {
		t.Parallel()

		factory := NewFactory().
			Register("custom", func(options map[string]interface{}) (Provider, error) {
				return nil, errors.New("first")
			}).
			Register("custom", NewAPITokenProvider)

		provider, err := factory.Create("custom", map[string]interface{}{"token": "abc"})
		require.NoError(t, err)
		assert.Equal(t, "api-token", provider.Name())
	})
}
