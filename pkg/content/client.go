package content

import "context"

// CollectionClient provides CRUD operations over a collection-type
// resource (`/<resource>` and `/<resource>/<documentID>`).
type CollectionClient interface {
	Find(ctx context.Context, params *QueryParams) (*DocumentsResponse, error)
	FindOne(ctx context.Context, documentID string, params *QueryParams) (*DocumentResponse, error)
	Create(ctx context.Context, data interface{}, params *QueryParams) (*DocumentResponse, error)
	Update(ctx context.Context, documentID string, data interface{}, params *QueryParams) (*DocumentResponse, error)
	Delete(ctx context.Context, documentID string, params *QueryParams) error
}

// SingleClient provides operations over a single-type resource
// (`/<resource>`).
type SingleClient interface {
	Find(ctx context.Context, params *QueryParams) (*DocumentResponse, error)
	Update(ctx context.Context, data interface{}, params *QueryParams) (*DocumentResponse, error)
	Delete(ctx context.Context, params *QueryParams) error
}

// Client is the top-level SDK surface.
type Client interface {
	// Collection returns a manager for a collection-type resource.
	Collection(resource string) CollectionClient
	// Single returns a manager for a single-type resource.
	Single(resource string) SingleClient
	// Fork derives a new client. Fields left unset in overrides (base URL,
	// timeout, headers) default to this client's values. When
	// inheritInterceptors is true the fork starts from copies of this
	// client's interceptor chains; mutations on either side never affect
	// the other.
	Fork(overrides *Config, inheritInterceptors bool) (Client, error)
}
