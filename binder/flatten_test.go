package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inputkit/inputkit/binder"
)

func TestFlatten(t *testing.T) {
	t.Run("merges body, query, and path with increasing precedence", func(t *testing.T) {
		body := `{"title": "from body", "page": "9", "id": "body-id"}`
		r := httptest.NewRequest("POST", "/books?page=2&id=query-id", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")

		data, err := binder.Flatten(r, map[string]string{"id": "path-id"})
		require.NoError(t, err)

		assert.Equal(t, "from body", data["title"])
		assert.Equal(t, "2", data["page"])
		assert.Equal(t, "path-id", data["id"])
	})

	t.Run("multi-value query parameters become slices", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/books?tag=go&tag=web", nil)

		data, err := binder.Flatten(r, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "web"}, data["tag"])
	})

	t.Run("nested body values stay structured", func(t *testing.T) {
		body := `{"meta": {"pages": 256}, "tags": ["a", "b"]}`
		r := httptest.NewRequest("POST", "/books", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		data, err := binder.Flatten(r, nil)
		require.NoError(t, err)
		assert.IsType(t, map[string]any{}, data["meta"])
		assert.IsType(t, []any{}, data["tags"])
	})

	t.Run("missing content type skips the body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/books?q=1", strings.NewReader(`{"a": 1}`))

		data, err := binder.Flatten(r, nil)
		require.NoError(t, err)
		assert.NotContains(t, data, "a")
		assert.Equal(t, "1", data["q"])
	})

	t.Run("empty json body is fine", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/books", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		data, err := binder.Flatten(r, nil)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("malformed json body fails", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/books", strings.NewReader(`{"a":`))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Flatten(r, nil)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("oversized body fails", func(t *testing.T) {
		huge := `{"a": "` + strings.Repeat("x", 1<<20) + `"}`
		r := httptest.NewRequest("POST", "/books", strings.NewReader(huge))
		r.Header.Set("Content-Type", "application/json")

		_, err := binder.Flatten(r, nil)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}
