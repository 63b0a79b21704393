package binder

import (
	"errors"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/inputkit/inputkit"
)

// Handler is a business handler that receives the validation result instead
// of re-binding the request. Sanitized values live in res.Sanitized; the
// request itself is never mutated.
type Handler func(w http.ResponseWriter, r *http.Request, res inputkit.Result)

// Validated wraps next with schema validation: the request sources are
// flattened, sanitized, and checked, and an invalid payload is rejected with
// 422 and the serialized Result before next ever runs.
func Validated(s inputkit.Schema, next Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := Flatten(r, PathParams(r))
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}

		res := inputkit.New(data, inputkit.WithSanitize()).Apply(s).Result()
		if !res.Valid {
			writeJSON(w, http.StatusUnprocessableEntity, res)
			return
		}

		next(w, r, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(v)
}
