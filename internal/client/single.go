package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/contentkit-io/contentkit/internal/http"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// SingleManager implements content.SingleClient for one single-type
// resource.
type SingleManager struct {
	httpClient *http.Client
	resource   string
}

// NewSingleManager creates a manager for the named resource.
func NewSingleManager(httpClient *http.Client, resource string) *SingleManager {
	return &SingleManager{
		httpClient: httpClient,
		resource:   resource,
	}
}

// Find implements content.SingleClient.Find.
func (m *SingleManager) Find(ctx context.Context, params *content.QueryParams) (*content.DocumentResponse, error) {
	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodGet,
		Path:   "/" + m.resource,
		Query:  queryValues(params),
	})
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", m.resource, err)
	}

	return parseDocument(m.resource, resp.Body)
}

// Update implements content.SingleClient.Update.
func (m *SingleManager) Update(ctx context.Context, data interface{}, params *content.QueryParams) (*content.DocumentResponse, error) {
	body, err := marshalData(data)
	if err != nil {
		return nil, err
	}

	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodPut,
		Path:   "/" + m.resource,
		Query:  queryValues(params),
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", m.resource, err)
	}

	return parseDocument(m.resource, resp.Body)
}

// Delete implements content.SingleClient.Delete.
func (m *SingleManager) Delete(ctx context.Context, params *content.QueryParams) error {
	_, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodDelete,
		Path:   "/" + m.resource,
		Query:  queryValues(params),
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", m.resource, err)
	}

	return nil
}
