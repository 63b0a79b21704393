package inputkit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnknownKind is returned when a textual kind cannot be resolved, e.g.
// from a schema file.
var ErrUnknownKind = errors.New("unknown rule kind")

// Error aggregates every field-level failure of one validation pass for
// callers that want strict, error-returning behavior. Status is a transport
// hint only; the engine itself never talks HTTP.
type Error struct {
	Items  []ErrorItem
	Status int
}

func (e *Error) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		parts = append(parts, fmt.Sprintf("%s: %s", item.Field, item.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newError wraps a non-empty item list with the default unprocessable status.
func newError(items []ErrorItem) *Error {
	return &Error{Items: items, Status: http.StatusUnprocessableEntity}
}

// AsError extracts the aggregate validation error from err, or nil when err
// is not one.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

// IsValidationError reports whether err carries an aggregate validation error.
func IsValidationError(err error) bool {
	return AsError(err) != nil
}
