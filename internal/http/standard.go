package http

import (
	"context"
	"errors"

	"github.com/contentkit-io/contentkit/internal/auth"
	"github.com/contentkit-io/contentkit/internal/constants"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// Standard interceptors wired at client construction time. The
// registration sequence fixes the ordering the lifecycle relies on: auth
// pre-flight and header injection run before default headers on the
// request side; status mapping runs before the unauthorized observer on
// the response side.

// AuthRequestInterceptor runs the pre-flight authentication check and
// injects the provider's headers. When a strategy is configured and the
// manager reports unauthenticated, the handshake runs first over the raw
// path; handshake failures leave the manager unauthenticated and the
// request proceeds without auth headers from the handshake.
func AuthRequestInterceptor(manager *auth.Manager, requester auth.Requester) content.Fulfilled[content.RequestEnvelope] {
	return func(ctx context.Context, env content.RequestEnvelope) (content.RequestEnvelope, error) {
		if manager.Strategy() != "" && !manager.IsAuthenticated() {
			manager.Authenticate(ctx, requester)
		}

		manager.AuthenticateRequest(env.Request)

		return env, nil
	}
}

// DefaultContentTypeInterceptor sets Content-Type to application/json
// unless the caller already specified a content type.
func DefaultContentTypeInterceptor() content.Fulfilled[content.RequestEnvelope] {
	return content.DefaultHeaderInterceptor(constants.HeaderContentType, constants.ContentTypeJSON)
}

// StatusErrorInterceptor maps non-2xx responses to the typed error
// hierarchy. 2xx responses pass through untouched. Installed as a
// registered interceptor so the request lifecycle stays independent of any
// particular classification policy.
func StatusErrorInterceptor() content.Fulfilled[content.ResponseEnvelope] {
	return func(ctx context.Context, env content.ResponseEnvelope) (content.ResponseEnvelope, error) {
		resp := env.Response
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return env, nil
		}

		return env, content.NewHTTPStatusError(
			resp.StatusCode, resp.Status, env.Request.Method, env.Request.URL, resp.Body)
	}
}

// UnauthorizedObserver notifies the auth manager whenever a 401 is
// observed, on both the success and the rejection path, so the next
// request re-attempts the handshake. The propagating error is left
// unchanged.
func UnauthorizedObserver(manager *auth.Manager) (content.Fulfilled[content.ResponseEnvelope], content.Rejected[content.ResponseEnvelope]) {
	fulfilled := func(ctx context.Context, env content.ResponseEnvelope) (content.ResponseEnvelope, error) {
		if env.Response.StatusCode == 401 {
			manager.HandleUnauthorized()
		}

		return env, nil
	}

	rejected := func(ctx context.Context, err error) (content.ResponseEnvelope, error) {
		unauthorized := &content.UnauthorizedError{}
		if errors.As(err, &unauthorized) {
			manager.HandleUnauthorized()
		}

		return content.ResponseEnvelope{}, err
	}

	return fulfilled, rejected
}
