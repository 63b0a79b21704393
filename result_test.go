package inputkit_test

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inputkit/inputkit"
)

func TestResultSerialization(t *testing.T) {
	t.Run("field names are part of the wire contract", func(t *testing.T) {
		res := inputkit.New(map[string]any{"email": "nope"}).
			Field("email", inputkit.Rule{Kind: inputkit.KindEmail}).
			Result()

		raw, err := gojson.Marshal(res)
		require.NoError(t, err)

		body := string(raw)
		assert.Contains(t, body, `"isValid":false`)
		assert.Contains(t, body, `"sanitizedData"`)
		assert.Contains(t, body, `"field":"email"`)
		assert.Contains(t, body, `"code":"INVALID_EMAIL"`)
	})

	t.Run("empty error list serializes as an array", func(t *testing.T) {
		res := inputkit.New(map[string]any{}).Result()

		raw, err := gojson.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"errors":[]`)
	})
}
