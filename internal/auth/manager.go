package auth

import (
	"context"
	"net/http"

	"github.com/contentkit-io/contentkit/pkg/content"
)

// Manager owns the selected provider and tracks whether its last handshake
// succeeded.
//
// The provider and the authenticated flag are shared, unlocked state
// across every request issued through the owning client: two concurrent
// requests that both observe an unauthenticated manager may both run the
// handshake, and the later result wins. Callers that need single-flight
// semantics must serialize externally.
type Manager struct {
	factory       *Factory
	provider      Provider
	authenticated bool
}

// NewManager creates a manager backed by the given factory, or the default
// factory when nil.
func NewManager(factory *Factory) *Manager {
	if factory == nil {
		factory = DefaultFactory()
	}

	return &Manager{factory: factory}
}

// Strategy returns the current provider's name, or "" when none is set.
func (m *Manager) Strategy() string {
	if m.provider == nil {
		return ""
	}

	return m.provider.Name()
}

// IsAuthenticated reports whether the last Authenticate call succeeded.
func (m *Manager) IsAuthenticated() bool {
	return m.authenticated
}

// SetStrategy constructs a provider via the factory and replaces any
// existing one. Construction-time option validation may fail.
func (m *Manager) SetStrategy(strategy string, options map[string]interface{}) error {
	provider, err := m.factory.Create(strategy, options)
	if err != nil {
		return err
	}

	m.provider = provider
	m.authenticated = false

	return nil
}

// Authenticate runs the provider's handshake. With no provider set it
// simply records the unauthenticated state: unauthenticated operation is a
// valid steady state, not a failure. Handshake errors are swallowed;
// callers observe failure through IsAuthenticated remaining false.
func (m *Manager) Authenticate(ctx context.Context, requester Requester) {
	if m.provider == nil {
		m.authenticated = false

		return
	}

	if err := m.provider.Authenticate(ctx, requester); err != nil {
		m.authenticated = false

		return
	}

	m.authenticated = true
}

// HandleUnauthorized resets the authenticated state so the next request
// re-attempts the handshake. Called when a 401 is observed.
func (m *Manager) HandleUnauthorized() {
	m.authenticated = false
}

// AuthenticateRequest copies the provider's headers onto the request,
// overwriting same-named headers already present. Headers are injected
// whenever a provider is set, independent of the authenticated flag, since
// static tokens never require a handshake.
func (m *Manager) AuthenticateRequest(req *content.Request) {
	if m.provider == nil {
		return
	}

	if req.Headers == nil {
		req.Headers = make(http.Header)
	}

	for key, value := range m.provider.Headers() {
		req.Headers.Set(key, value)
	}
}
