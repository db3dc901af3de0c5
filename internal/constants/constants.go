// Package constants centralizes defaults shared across the SDK.
package constants

import "time"

// HTTP defaults.
const (
	// DefaultTimeout bounds every request attempt issued by the client.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent identifies the SDK when the caller does not override it.
	DefaultUserAgent = "contentkit-go"
)

// Header names and values.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// BearerPrefix precedes tokens in the Authorization header.
	BearerPrefix = "Bearer "
)

// Authentication strategies.
const (
	// StrategyAPIToken authenticates with a static API token.
	StrategyAPIToken = "api-token"
	// StrategyUsersPermissions exchanges user credentials for a session token.
	StrategyUsersPermissions = "users-permissions"

	// LocalAuthPath is the relative endpoint of the credential exchange.
	LocalAuthPath = "/auth/local"
)
