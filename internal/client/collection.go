package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/contentkit-io/contentkit/internal/http"
	"github.com/contentkit-io/contentkit/pkg/content"
)

// CollectionManager implements content.CollectionClient for one
// collection-type resource. It only builds paths, encodes query
// parameters, and (de)serializes JSON; all lifecycle behavior lives in the
// HTTP client.
type CollectionManager struct {
	httpClient *http.Client
	resource   string
}

// NewCollectionManager creates a manager for the named resource.
func NewCollectionManager(httpClient *http.Client, resource string) *CollectionManager {
	return &CollectionManager{
		httpClient: httpClient,
		resource:   resource,
	}
}

// Find implements content.CollectionClient.Find.
func (m *CollectionManager) Find(ctx context.Context, params *content.QueryParams) (*content.DocumentsResponse, error) {
	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodGet,
		Path:   "/" + m.resource,
		Query:  queryValues(params),
	})
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", m.resource, err)
	}

	var result content.DocumentsResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", m.resource, err)
	}

	return &result, nil
}

// FindOne implements content.CollectionClient.FindOne.
func (m *CollectionManager) FindOne(ctx context.Context, documentID string, params *content.QueryParams) (*content.DocumentResponse, error) {
	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodGet,
		Path:   m.documentPath(documentID),
		Query:  queryValues(params),
	})
	if err != nil {
		return nil, fmt.Errorf("finding %s document: %w", m.resource, err)
	}

	return parseDocument(m.resource, resp.Body)
}

// Create implements content.CollectionClient.Create.
func (m *CollectionManager) Create(ctx context.Context, data interface{}, params *content.QueryParams) (*content.DocumentResponse, error) {
	body, err := marshalData(data)
	if err != nil {
		return nil, err
	}

	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodPost,
		Path:   "/" + m.resource,
		Query:  queryValues(params),
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s document: %w", m.resource, err)
	}

	return parseDocument(m.resource, resp.Body)
}

// Update implements content.CollectionClient.Update.
func (m *CollectionManager) Update(ctx context.Context, documentID string, data interface{}, params *content.QueryParams) (*content.DocumentResponse, error) {
	body, err := marshalData(data)
	if err != nil {
		return nil, err
	}

	resp, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodPut,
		Path:   m.documentPath(documentID),
		Query:  queryValues(params),
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s document: %w", m.resource, err)
	}

	return parseDocument(m.resource, resp.Body)
}

// Delete implements content.CollectionClient.Delete.
func (m *CollectionManager) Delete(ctx context.Context, documentID string, params *content.QueryParams) error {
	_, err := m.httpClient.Do(ctx, &content.Request{
		Method: nethttp.MethodDelete,
		Path:   m.documentPath(documentID),
		Query:  queryValues(params),
	})
	if err != nil {
		return fmt.Errorf("deleting %s document: %w", m.resource, err)
	}

	return nil
}

func (m *CollectionManager) documentPath(documentID string) string {
	return "/" + m.resource + "/" + url.PathEscape(documentID)
}

func queryValues(params *content.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}

// marshalData wraps the payload in the `{"data": ...}` envelope the API
// expects on writes.
func marshalData(data interface{}) ([]byte, error) {
	body, err := json.Marshal(map[string]interface{}{"data": data})
	if err != nil {
		return nil, fmt.Errorf("encoding document payload: %w", err)
	}

	return body, nil
}

func parseDocument(resource string, body []byte) (*content.DocumentResponse, error) {
	var result content.DocumentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s document response: %w", resource, err)
	}

	return &result, nil
}
