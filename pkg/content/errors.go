package content

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
)

// SDKError is the generic wrapper for failures raised by the SDK itself
// rather than by the remote API.
type SDKError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SDKError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *SDKError) Unwrap() error {
	return e.Cause
}

// ValidationError reports malformed caller-supplied input, raised
// synchronously at configuration time and never deferred to first use.
type ValidationError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// InitializationError reports a failure while assembling a client.
type InitializationError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InitializationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *InitializationError) Unwrap() error {
	return e.Cause
}

// URLParsingError reports a base URL that could not be parsed as an
// absolute URL.
type URLParsingError struct {
	Value string
	Cause error
}

// Error implements the error interface.
func (e *URLParsingError) Error() string {
	return fmt.Sprintf("could not parse %q as an absolute URL", e.Value)
}

// Unwrap returns the underlying parse error, if any.
func (e *URLParsingError) Unwrap() error {
	return e.Cause
}

// URLProtocolValidationError reports a base URL whose protocol is not in
// the allow-list.
type URLProtocolValidationError struct {
	Protocol string
	Allowed  []string
}

// Error implements the error interface.
func (e *URLProtocolValidationError) Error() string {
	return fmt.Sprintf("protocol %q is not allowed; allowed protocols are %s",
		e.Protocol, strings.Join(e.Allowed, ", "))
}

// HTTPError is the base error for non-2xx responses. It carries the
// request coordinates and the raw response body for inspection.
type HTTPError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" && e.StatusCode > 0 {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if status == "" {
		return "Request failed with an unknown error"
	}

	if e.Method == "" && e.URL == "" {
		return fmt.Sprintf("Request failed with status code %s", status)
	}

	return fmt.Sprintf("Request failed with status code %s: %s %s", status, e.Method, e.URL)
}

// BadRequestError is raised for 400 responses.
type BadRequestError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *BadRequestError) Unwrap() error { return &e.HTTPError }

// UnauthorizedError is raised for 401 responses.
type UnauthorizedError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *UnauthorizedError) Unwrap() error { return &e.HTTPError }

// ForbiddenError is raised for 403 responses.
type ForbiddenError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *ForbiddenError) Unwrap() error { return &e.HTTPError }

// NotFoundError is raised for 404 responses.
type NotFoundError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *NotFoundError) Unwrap() error { return &e.HTTPError }

// TimeoutError is raised for 408 responses.
type TimeoutError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *TimeoutError) Unwrap() error { return &e.HTTPError }

// InternalServerError is raised for 500 responses.
type InternalServerError struct{ HTTPError }

// Unwrap exposes the embedded HTTPError to errors.As.
func (e *InternalServerError) Unwrap() error { return &e.HTTPError }

// NewHTTPStatusError maps a non-2xx response to its typed error. Statuses
// without a dedicated type map to the generic HTTPError.
func NewHTTPStatusError(statusCode int, status, method, url string, body []byte) error {
	base := HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Method:     method,
		URL:        url,
		Body:       body,
	}

	switch statusCode {
	case http.StatusBadRequest:
		return &BadRequestError{base}
	case http.StatusUnauthorized:
		return &UnauthorizedError{base}
	case http.StatusForbidden:
		return &ForbiddenError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusRequestTimeout:
		return &TimeoutError{base}
	case http.StatusInternalServerError:
		return &InternalServerError{base}
	default:
		return &base
	}
}

// IsNotFound checks if the error is a 404 error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsUnauthorized checks if the error is a 401 error.
func IsUnauthorized(err error) bool {
	unauthorized := &UnauthorizedError{}

	return errors.As(err, &unauthorized)
}

// IsForbidden checks if the error is a 403 error.
func IsForbidden(err error) bool {
	forbidden := &ForbiddenError{}

	return errors.As(err, &forbidden)
}
