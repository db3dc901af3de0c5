package content

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// PublicationStatus selects which document versions list operations return.
type PublicationStatus string

// Publication statuses.
const (
	StatusPublished PublicationStatus = "published"
	StatusDraft     PublicationStatus = "draft"
)

// PaginationParams controls the page window of list operations. Page and
// PageSize select page-based pagination; Start and Limit select offset-based
// pagination.
type PaginationParams struct {
	Page      int
	PageSize  int
	WithCount *bool
	Start     int
	Limit     int
}

// QueryParams represents the query options recognized by the content API.
// Nested values are flattened into the bracketed key convention
// (`key[subkey]=value`, `key[0]=v0`) when encoded.
type QueryParams struct {
	// Populate selects which relations to resolve: a string, a slice of
	// relation names, or a nested map of per-relation options.
	Populate interface{}
	// Fields limits the attributes returned per document.
	Fields []string
	// Filters is a nested predicate record (`filters[title][$eq]=...`).
	Filters map[string]interface{}
	Locale  string
	Status  PublicationStatus
	// Sort is a single `field:direction` string or a slice of them.
	Sort       interface{}
	Pagination *PaginationParams
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// ToValues converts the parameters to url.Values using the bracketed key
// convention.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	appendParam(values, "populate", p.Populate)

	if len(p.Fields) > 0 {
		appendParam(values, "fields", p.Fields)
	}

	if len(p.Filters) > 0 {
		appendParam(values, "filters", p.Filters)
	}

	if p.Locale != "" {
		values.Set("locale", p.Locale)
	}

	if p.Status != "" {
		values.Set("status", string(p.Status))
	}

	appendParam(values, "sort", p.Sort)

	if p.Pagination != nil {
		p.Pagination.appendTo(values)
	}

	return values
}

// Encode serializes the parameters to a query string.
func (p *QueryParams) Encode() string {
	return p.ToValues().Encode()
}

func (p *PaginationParams) appendTo(values url.Values) {
	if p.Page > 0 {
		values.Set("pagination[page]", strconv.Itoa(p.Page))
	}

	if p.PageSize > 0 {
		values.Set("pagination[pageSize]", strconv.Itoa(p.PageSize))
	}

	if p.WithCount != nil {
		values.Set("pagination[withCount]", strconv.FormatBool(*p.WithCount))
	}

	if p.Start > 0 {
		values.Set("pagination[start]", strconv.Itoa(p.Start))
	}

	if p.Limit > 0 {
		values.Set("pagination[limit]", strconv.Itoa(p.Limit))
	}
}

// appendParam flattens value under key: maps recurse with `key[subkey]`,
// sequences recurse with `key[index]`, scalars are set directly.
func appendParam(values url.Values, key string, value interface{}) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		values.Set(key, v)
	case bool:
		values.Set(key, strconv.FormatBool(v))
	case []string:
		for i, item := range v {
			appendParam(values, fmt.Sprintf("%s[%d]", key, i), item)
		}
	case []interface{}:
		for i, item := range v {
			appendParam(values, fmt.Sprintf("%s[%d]", key, i), item)
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			appendParam(values, fmt.Sprintf("%s[%s]", key, k), v[k])
		}
	default:
		appendReflected(values, key, value)
	}
}

// appendReflected handles slice, map, and scalar kinds not covered by the
// concrete cases above.
func appendReflected(values url.Values, key string, value interface{}) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendParam(values, fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface())
		}
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]reflect.Value, rv.Len())

		for _, mk := range rv.MapKeys() {
			k := fmt.Sprint(mk.Interface())
			keys = append(keys, k)
			byKey[k] = rv.MapIndex(mk)
		}

		sort.Strings(keys)

		for _, k := range keys {
			appendParam(values, fmt.Sprintf("%s[%s]", key, k), byKey[k].Interface())
		}
	case reflect.Ptr:
		if !rv.IsNil() {
			appendParam(values, key, rv.Elem().Interface())
		}
	default:
		values.Set(key, fmt.Sprint(value))
	}
}
