package content

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/contentkit-io/contentkit/internal/constants"
)

// Request represents an HTTP request flowing through the client.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte

	// URL is the absolute request URL. The client populates it from the
	// base URL and Path before dispatch; interceptors should treat it as
	// read-only.
	URL string

	// Metadata carries interceptor-private values across phases.
	Metadata map[string]interface{}
}

// Response represents an HTTP response flowing through the client.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// RequestEnvelope is the payload of the request-phase interceptor chain.
type RequestEnvelope struct {
	Request *Request
}

// ResponseEnvelope is the payload of the response-phase interceptor chain.
type ResponseEnvelope struct {
	Request  *Request
	Response *Response
}

// Fulfilled transforms the running value of an interceptor chain.
type Fulfilled[T any] func(ctx context.Context, value T) (T, error)

// Rejected recovers from an error raised earlier in the chain. Returning a
// nil error resumes the chain with the returned value; returning a non-nil
// error replaces the propagating error.
type Rejected[T any] func(ctx context.Context, err error) (T, error)

// InterceptorEntry pairs a transform with its optional recovery handler.
type InterceptorEntry[T any] struct {
	Fulfilled Fulfilled[T]
	Rejected  Rejected[T]
}

// InterceptorManager holds an ordered chain of interceptor entries over a
// payload type. Insertion order is execution order. The chain is expected
// to be assembled during setup; Execute never mutates it, so concurrent
// executions over a settled chain are safe.
type InterceptorManager[T any] struct {
	entries []InterceptorEntry[T]
}

// NewInterceptorManager creates an empty interceptor manager.
func NewInterceptorManager[T any]() *InterceptorManager[T] {
	return &InterceptorManager[T]{
		entries: make([]InterceptorEntry[T], 0),
	}
}

// Use appends one entry to the chain. Either handler may be nil. Returns
// the manager for chaining.
func (m *InterceptorManager[T]) Use(fulfilled Fulfilled[T], rejected Rejected[T]) *InterceptorManager[T] {
	m.entries = append(m.entries, InterceptorEntry[T]{Fulfilled: fulfilled, Rejected: rejected})

	return m
}

// Len reports the number of entries in the chain.
func (m *InterceptorManager[T]) Len() int {
	return len(m.entries)
}

// Execute folds the chain left-to-right over value. When an entry's
// Fulfilled handler fails and the same entry carries a Rejected handler,
// that handler may recover and the chain continues with its value;
// otherwise the error propagates immediately, skipping later entries.
func (m *InterceptorManager[T]) Execute(ctx context.Context, value T) (T, error) {
	current := value

	for _, entry := range m.entries {
		if entry.Fulfilled == nil {
			continue
		}

		next, err := entry.Fulfilled(ctx, current)
		if err == nil {
			current = next

			continue
		}

		if entry.Rejected == nil {
			var zero T

			return zero, err
		}

		recovered, rerr := entry.Rejected(ctx, err)
		if rerr != nil {
			var zero T

			return zero, rerr
		}

		current = recovered
	}

	return current, nil
}

// Reject folds only the Rejected handlers left-to-right over err,
// propagating a terminal failure that has no successful value. A handler
// returning a non-nil error replaces the propagating error; a handler
// returning nil leaves it unchanged.
func (m *InterceptorManager[T]) Reject(ctx context.Context, err error) error {
	current := err

	for _, entry := range m.entries {
		if entry.Rejected == nil {
			continue
		}

		if _, rerr := entry.Rejected(ctx, current); rerr != nil {
			current = rerr
		}
	}

	return current
}

// Clone returns a new manager with the same ordered entries. The entry
// list is copied; the handlers themselves are shared, so a derived client
// can extend its chain without mutating the parent's.
func (m *InterceptorManager[T]) Clone() *InterceptorManager[T] {
	entries := make([]InterceptorEntry[T], len(m.entries))
	copy(entries, m.entries)

	return &InterceptorManager[T]{entries: entries}
}

// Common interceptors

// HeaderInterceptor sets custom headers on every request, overwriting
// same-named headers already present.
func HeaderInterceptor(headers map[string]string) Fulfilled[RequestEnvelope] {
	return func(ctx context.Context, env RequestEnvelope) (RequestEnvelope, error) {
		ensureHeaders(env.Request)

		for key, value := range headers {
			env.Request.Headers.Set(key, value)
		}

		return env, nil
	}
}

// DefaultHeaderInterceptor sets a header only when the request does not
// already carry one with the same name.
func DefaultHeaderInterceptor(key, value string) Fulfilled[RequestEnvelope] {
	return func(ctx context.Context, env RequestEnvelope) (RequestEnvelope, error) {
		ensureHeaders(env.Request)

		if env.Request.Headers.Get(key) == "" {
			env.Request.Headers.Set(key, value)
		}

		return env, nil
	}
}

// RequestIDInterceptor stamps each request with a generated X-Request-ID
// unless the caller already provided one.
func RequestIDInterceptor() Fulfilled[RequestEnvelope] {
	return func(ctx context.Context, env RequestEnvelope) (RequestEnvelope, error) {
		ensureHeaders(env.Request)

		if env.Request.Headers.Get(constants.HeaderRequestID) == "" {
			env.Request.Headers.Set(constants.HeaderRequestID, uuid.NewString())
		}

		return env, nil
	}
}

// LoggingRequestInterceptor logs outgoing requests at debug level.
func LoggingRequestInterceptor(logger Logger) Fulfilled[RequestEnvelope] {
	return func(ctx context.Context, env RequestEnvelope) (RequestEnvelope, error) {
		logger.Debug("API request", map[string]interface{}{
			"method": env.Request.Method,
			"path":   env.Request.Path,
		})

		return env, nil
	}
}

// LoggingResponseInterceptor logs received responses at debug level.
func LoggingResponseInterceptor(logger Logger) Fulfilled[ResponseEnvelope] {
	return func(ctx context.Context, env ResponseEnvelope) (ResponseEnvelope, error) {
		logger.Debug("API response", map[string]interface{}{
			"method":      env.Request.Method,
			"path":        env.Request.Path,
			"status_code": env.Response.StatusCode,
		})

		return env, nil
	}
}

func ensureHeaders(req *Request) {
	if req.Headers == nil {
		req.Headers = make(http.Header)
	}
}
