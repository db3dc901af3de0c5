// Package auth implements the SDK's pluggable authentication strategies:
// the provider capability, the strategy factory, and the manager that owns
// the selected provider across requests.
package auth

import (
	"context"
	"fmt"

	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// Requester is the minimal request surface a provider may use during its
// handshake. Implementations must be the client's raw, non-intercepted
// path: the intercepted path triggers pre-flight authentication itself, so
// routing a handshake through it would recurse.
type Requester interface {
	RawJSON(ctx context.Context, method, path string, body, out interface{}) error
}

// Provider is the authentication strategy capability.
type Provider interface {
	// Name is the stable strategy identifier.
	Name() string
	// Headers returns the current auth headers. Handshake-based providers
	// return an empty map until Authenticate has succeeded.
	Headers() map[string]string
	// Authenticate establishes the provider's internal state. Static-token
	// providers treat this as a no-op.
	Authenticate(ctx context.Context, requester Requester) error
}

// ProviderConstructor builds a provider from strategy-specific options,
// validating them synchronously.
type ProviderConstructor func(options map[string]interface{}) (Provider, error)

// Factory maps strategy names to provider constructors.
type Factory struct {
	constructors map[string]ProviderConstructor
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{
		constructors: make(map[string]ProviderConstructor),
	}
}

// DefaultFactory creates a factory with the built-in strategies
// registered.
func DefaultFactory() *Factory {
	return NewFactory().
		Register(constants.StrategyAPIToken, NewAPITokenProvider).
		Register(constants.StrategyUsersPermissions, NewUsersPermissionsProvider)
}

// Register binds a constructor to a strategy name. Re-registering a name
// replaces the previous constructor. Returns the factory for chaining.
func (f *Factory) Register(strategy string, constructor ProviderConstructor) *Factory {
	f.constructors[strategy] = constructor

	return f
}

// Create builds a provider for the named strategy, running the
// constructor's option validation. Unregistered names are an error, never
// a default provider.
func (f *Factory) Create(strategy string, options map[string]interface{}) (Provider, error) {
	constructor, ok := f.constructors[strategy]
	if !ok {
		return nil, &content.SDKError{
			Message: fmt.Sprintf("unsupported authentication strategy %q", strategy),
		}
	}

	provider, err := constructor(options)
	if err != nil {
		return nil, fmt.Errorf("creating %q provider: %w", strategy, err)
	}

	return provider, nil
}
