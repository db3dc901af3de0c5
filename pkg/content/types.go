package content

// Document represents a single content entry. Attribute shapes are defined
// by the remote content types, so entries are surfaced as generic maps.
type Document map[string]interface{}

// DocumentResponse represents the `{data, meta}` body returned by
// single-document operations.
type DocumentResponse struct {
	Data Document     `json:"data" yaml:"data"`
	Meta ResponseMeta `json:"meta" yaml:"meta"`
}

// DocumentsResponse represents the `{data, meta}` body returned by list
// operations.
type DocumentsResponse struct {
	Data []Document   `json:"data" yaml:"data"`
	Meta ResponseMeta `json:"meta" yaml:"meta"`
}

// ResponseMeta carries response metadata.
type ResponseMeta struct {
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// Pagination describes the page window of a list response. Page-based and
// offset-based fields are mutually exclusive on the wire.
type Pagination struct {
	Page      int `json:"page,omitempty"      yaml:"page,omitempty"`
	PageSize  int `json:"pageSize,omitempty"  yaml:"pageSize,omitempty"`
	PageCount int `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	Total     int `json:"total,omitempty"     yaml:"total,omitempty"`
	Start     int `json:"start,omitempty"     yaml:"start,omitempty"`
	Limit     int `json:"limit,omitempty"     yaml:"limit,omitempty"`
}

// APIErrorDetail is the error object embedded in API error bodies.
type APIErrorDetail struct {
	Status  int                    `json:"status"            yaml:"status"`
	Name    string                 `json:"name"              yaml:"name"`
	Message string                 `json:"message"           yaml:"message"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// ErrorResponse represents the `{data, error}` body the API returns on
// failures.
type ErrorResponse struct {
	Data  interface{}    `json:"data"  yaml:"data"`
	Error APIErrorDetail `json:"error" yaml:"error"`
}
