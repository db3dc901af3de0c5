// Package urlx validates base URLs and normalizes path slashes.
package urlx

import (
	"net/url"
	"slices"
	"strings"

	"github.com/contentkit-io/contentkit/pkg/content"
)

// DefaultProtocols is the protocol allow-list applied when none is given.
var DefaultProtocols = []string{"http:", "https:"}

// Validate checks that raw parses as an absolute URL using one of the
// default allowed protocols. It has no side effects.
func Validate(raw string) error {
	return ValidateWithProtocols(raw, DefaultProtocols)
}

// ValidateWithProtocols checks raw against an explicit protocol allow-list.
func ValidateWithProtocols(raw string, allowed []string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return &content.URLParsingError{Value: raw, Cause: err}
	}

	if !parsed.IsAbs() || parsed.Host == "" {
		return &content.URLParsingError{Value: raw}
	}

	protocol := parsed.Scheme + ":"
	if !slices.Contains(allowed, protocol) {
		return &content.URLProtocolValidationError{Protocol: protocol, Allowed: allowed}
	}

	return nil
}

// SlashPolicy controls how FormatPath treats slashes on one side of a path.
type SlashPolicy string

// Slash policies.
const (
	// SlashStrip removes all slashes.
	SlashStrip SlashPolicy = "strip"
	// SlashKeep leaves the side untouched.
	SlashKeep SlashPolicy = "keep"
	// SlashSingle collapses to exactly one slash.
	SlashSingle SlashPolicy = "single"
)

// FormatPath normalizes the leading and trailing slashes of a path
// fragment. It is a pure string transform; path semantics are not
// validated.
func FormatPath(path string, leading, trailing SlashPolicy) string {
	switch leading {
	case SlashStrip:
		path = strings.TrimLeft(path, "/")
	case SlashSingle:
		path = "/" + strings.TrimLeft(path, "/")
	case SlashKeep:
	}

	switch trailing {
	case SlashStrip:
		path = strings.TrimRight(path, "/")
	case SlashSingle:
		path = strings.TrimRight(path, "/") + "/"
	case SlashKeep:
	}

	return path
}

// TrimBase strips trailing slashes from a base URL so paths can be joined
// with a single separator.
func TrimBase(raw string) string {
	return strings.TrimRight(raw, "/")
}
