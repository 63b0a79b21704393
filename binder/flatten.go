package binder

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	gojson "github.com/goccy/go-json"
)

// maxBodySize caps how much of a request body Flatten is willing to read.
const maxBodySize = 1 << 20

// Flatten merges the request's raw sources into one flat mapping. A JSON
// body contributes its top-level keys, query parameters override them, and
// pathParams override everything. Nested body values stay as decoded
// (map[string]any, []any); multi-value query parameters become []string.
func Flatten(r *http.Request, pathParams map[string]string) (map[string]any, error) {
	data := make(map[string]any)

	if hasJSONBody(r) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		if len(body) > maxBodySize {
			return nil, ErrBodyTooLarge
		}
		if len(body) > 0 {
			var decoded map[string]any
			if err := gojson.Unmarshal(body, &decoded); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
			for key, value := range decoded {
				data[key] = value
			}
		}
	}

	for key, values := range r.URL.Query() {
		if len(values) == 1 {
			data[key] = values[0]
			continue
		}
		data[key] = values
	}

	for key, value := range pathParams {
		data[key] = value
	}

	return data, nil
}

// hasJSONBody reports whether the request declares a JSON payload. A
// non-JSON content type on a body-carrying method is not an error here; the
// body is simply ignored so query and path sources still bind.
func hasJSONBody(r *http.Request) bool {
	if r.Body == nil {
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	return mediaType == "application/json"
}

// PathParams extracts the chi router's URL parameters for the current
// request, or nil when the request was not routed by chi.
func PathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
