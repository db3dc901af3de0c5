package urlx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit-io/contentkit/pkg/content"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts http and https URLs", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"http://localhost:1337",
			"https://api.example.com",
			"https://api.example.com/base/path",
		} {
			assert.NoError(t, Validate(raw), raw)
		}
	})

	t.Run("rejects unparseable values", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"not a url",
			"",
			"/relative/path",
			"example.com",
		} {
			err := Validate(raw)
			require.Error(t, err, raw)

			parseErr := &content.URLParsingError{}
			assert.True(t, errors.As(err, &parseErr), raw)
		}
	})

	t.Run("rejects disallowed protocols", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"ftp://example.com",
			"ws://example.com",
			"file://example.com/etc/passwd",
		} {
			err := Validate(raw)
			require.Error(t, err, raw)

			protocolErr := &content.URLProtocolValidationError{}
			require.True(t, errors.As(err, &protocolErr), raw)
			assert.Contains(t, protocolErr.Allowed, "http:")
			assert.Contains(t, protocolErr.Allowed, "https:")
		}
	})

	t.Run("error names the offending protocol", func(t *testing.T) {
		t.Parallel()

		err := Validate("ftp://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ftp:"`)
	})

	t.Run("custom allow-list", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, ValidateWithProtocols("ws://example.com", []string{"ws:", "wss:"}))
		assert.Error(t, ValidateWithProtocols("http://example.com", []string{"ws:", "wss:"}))
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		leading  SlashPolicy
		trailing SlashPolicy
		expected string
	}{
		{"strip both", "/articles/", SlashStrip, SlashStrip, "articles"},
		{"strip repeated", "///articles///", SlashStrip, SlashStrip, "articles"},
		{"keep both", "/articles/", SlashKeep, SlashKeep, "/articles/"},
		{"single leading", "articles", SlashSingle, SlashKeep, "/articles"},
		{"single leading collapses", "///articles", SlashSingle, SlashKeep, "/articles"},
		{"single trailing", "articles", SlashKeep, SlashSingle, "articles/"},
		{"single trailing collapses", "articles///", SlashKeep, SlashSingle, "articles/"},
		{"empty with single leading", "", SlashSingle, SlashKeep, "/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatPath(tt.path, tt.leading, tt.trailing))
		})
	}

	t.Run("single trailing is idempotent", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"", "/", "a", "a/", "a//", "//a//b//"} {
			once := FormatPath(path, SlashKeep, SlashSingle)
			twice := FormatPath(once, SlashKeep, SlashSingle)
			assert.Equal(t, once, twice, path)
		}
	})
}

func TestTrimBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://localhost:1337", TrimBase("http://localhost:1337/"))
	assert.Equal(t, "http://localhost:1337", TrimBase("http://localhost:1337"))
	assert.Equal(t, "http://localhost:1337/api", TrimBase("http://localhost:1337/api///"))
}
