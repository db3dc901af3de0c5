package auth

import (
	"context"
	"strings"

	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// APITokenProvider authenticates with a static API token. The token is
// usable immediately; Authenticate is a no-op.
type APITokenProvider struct {
	token string
}

// NewAPITokenProvider validates options and builds the provider. Options:
// `token` (required non-blank string).
func NewAPITokenProvider(options map[string]interface{}) (Provider, error) {
	raw, ok := options["token"]
	if !ok || raw == nil {
		return nil, &content.ValidationError{Message: "a token option is required"}
	}

	token, ok := raw.(string)
	if !ok {
		return nil, &content.ValidationError{Message: "the token option must be a string"}
	}

	if strings.TrimSpace(token) == "" {
		return nil, &content.ValidationError{Message: "the token option must not be blank"}
	}

	return &APITokenProvider{token: token}, nil
}

// Name implements Provider.
func (p *APITokenProvider) Name() string {
	return constants.StrategyAPIToken
}

// Headers implements Provider.
func (p *APITokenProvider) Headers() map[string]string {
	return map[string]string{
		constants.HeaderAuthorization: constants.BearerPrefix + p.token,
	}
}

// Authenticate implements Provider. Static tokens need no handshake.
func (p *APITokenProvider) Authenticate(ctx context.Context, requester Requester) error {
	return nil
}
