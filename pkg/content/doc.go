// Package content defines the public surface of the content API SDK:
// configuration, response types, query parameters, the error taxonomy, the
// interceptor chain primitives, and the client interfaces.
//
// Use github.com/contentkit-io/contentkit/pkg/contentclient to construct a
// working client.
package content
