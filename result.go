package inputkit

// ErrorItem captures a single field-level failure as data.
type ErrorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
	Code    Code   `json:"code"`
}

// Result is the aggregate outcome of one validation pass. Valid is true
// exactly when Errors is empty. Sanitized carries every field present in the
// input, with transformed values where a rule supplied a Transform, so
// callers may inspect partial sanitized output even on failure.
type Result struct {
	Valid     bool           `json:"isValid"`
	Errors    []ErrorItem    `json:"errors"`
	Sanitized map[string]any `json:"sanitizedData"`
}
