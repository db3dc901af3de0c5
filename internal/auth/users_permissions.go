package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// UsersPermissionsProvider exchanges user credentials for a session token
// by posting to the local auth endpoint. Headers are empty until the
// exchange has succeeded.
type UsersPermissionsProvider struct {
	identifier string
	password   string
	token      string
}

// NewUsersPermissionsProvider validates options and builds the provider.
// Options: `identifier` and `password` (required strings).
func NewUsersPermissionsProvider(options map[string]interface{}) (Provider, error) {
	identifier, err := requiredString(options, "identifier")
	if err != nil {
		return nil, err
	}

	password, err := requiredString(options, "password")
	if err != nil {
		return nil, err
	}

	return &UsersPermissionsProvider{identifier: identifier, password: password}, nil
}

func requiredString(options map[string]interface{}, key string) (string, error) {
	raw, ok := options[key]
	if !ok || raw == nil {
		return "", &content.ValidationError{Message: fmt.Sprintf("a %s option is required", key)}
	}

	value, ok := raw.(string)
	if !ok {
		return "", &content.ValidationError{Message: fmt.Sprintf("the %s option must be a string", key)}
	}

	return value, nil
}

// Name implements Provider.
func (p *UsersPermissionsProvider) Name() string {
	return constants.StrategyUsersPermissions
}

// Headers implements Provider.
func (p *UsersPermissionsProvider) Headers() map[string]string {
	if p.token == "" {
		return map[string]string{}
	}

	return map[string]string{
		constants.HeaderAuthorization: constants.BearerPrefix + p.token,
	}
}

// Authenticate implements Provider. It posts the credentials over the raw
// request path and stores the returned session token. A failed exchange is
// an error, never a silent no-op.
func (p *UsersPermissionsProvider) Authenticate(ctx context.Context, requester Requester) error {
	payload := map[string]string{
		"identifier": p.identifier,
		"password":   p.password,
	}

	var result struct {
		JWT string `json:"jwt"`
	}

	err := requester.RawJSON(ctx, http.MethodPost, constants.LocalAuthPath, payload, &result)
	if err != nil {
		return fmt.Errorf("exchanging credentials: %w", err)
	}

	if result.JWT == "" {
		return &content.SDKError{Message: "credential exchange response did not include a token"}
	}

	p.token = result.JWT

	return nil
}
