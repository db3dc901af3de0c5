package content

import "time"

// Config represents client configuration for building a content.Client.
//
// # Authentication
//
// Auth is optional; a nil Auth means requests are sent unauthenticated.
// Strategy selects a registered authentication strategy ("api-token" or
// "users-permissions" by default) and Options carries that strategy's
// settings. Option validation happens while the client is constructed:
// construction either fully succeeds or fully fails.
//
// # Timeouts
//
// Timeout bounds every individual request attempt. It supersedes any
// deadline an interceptor attaches to a request; callers can still cancel
// earlier through the context they pass to client methods.
type Config struct {
	// BaseURL is the root all relative request paths are resolved against.
	// Required; must be an absolute http or https URL. A trailing slash is
	// trimmed during construction.
	BaseURL string `json:"baseURL" yaml:"baseURL"`

	// Timeout is the per-request timeout. Defaults to 10 seconds.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Headers are static headers appended to every request. They never
	// overwrite a header the caller already set on an individual request.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Auth selects the authentication strategy, if any.
	Auth *AuthConfig `json:"auth,omitempty" yaml:"auth,omitempty"`

	// Logger receives debug/error output from the HTTP layer. Optional.
	Logger Logger `json:"-" yaml:"-"`

	// Debug enables request/response logging through Logger.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
}

// AuthConfig selects an authentication strategy by name.
type AuthConfig struct {
	Strategy string                 `json:"strategy" yaml:"strategy"`
	Options  map[string]interface{} `json:"options"  yaml:"options"`
}
