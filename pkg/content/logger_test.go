package content_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit-io/contentkit/pkg/content"
)

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()

	t.Run("emits structured JSON with fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := content.NewDefaultLogger(&buf, false)

		logger.Info("API request", map[string]interface{}{
			"method": "GET",
			"url":    "http://localhost:1337/articles",
		})

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "API request", entry["message"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("debug output is gated on the debug flag", func(t *testing.T) {
		t.Parallel()

		var quiet bytes.Buffer
		content.NewDefaultLogger(&quiet, false).Debug("hidden", nil)
		assert.Zero(t, quiet.Len())

		var verbose bytes.Buffer
		content.NewDefaultLogger(&verbose, true).Debug("visible", nil)
		assert.Contains(t, verbose.String(), "visible")
	})
}
