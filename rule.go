package inputkit

import "regexp"

// Rule describes a single check for one field. A Rule is a plain immutable
// value: construct it literally, share it freely, never mutate it after
// handing it to a Schema.
type Rule struct {
	// Kind selects the type-specific checker.
	Kind Kind

	// Required rejects absent or empty values with CodeRequired. When false,
	// an absent or empty value passes without running any further checks.
	Required bool

	// Min and Max bound the value: character length for KindString, numeric
	// value for KindNumber, minimum length for KindPassword (default 8).
	Min *float64
	Max *float64

	// Pattern, when set, must match the string form of the checked value.
	Pattern *regexp.Regexp

	// Enum, when non-empty, is the closed set of allowed values.
	Enum []any

	// Custom is an extra predicate over the transformed value. A panic inside
	// the predicate is treated as a failed check, not propagated.
	Custom func(value any) bool

	// Transform is applied to the raw value before any checking; its output
	// replaces the field in Result.Sanitized whether or not the rule passes.
	Transform func(value any) any

	// Message overrides the default human-readable message for any failure
	// of this rule.
	Message string
}

// Schema maps field names to their ordered rule lists. Evaluation of one
// field stops at its first failing rule; fields are independent of each
// other. Schemas are plain data, built once and treated as read-only.
type Schema map[string][]Rule

// Bound is a convenience for filling Rule.Min and Rule.Max literals.
func Bound(v float64) *float64 { return &v }
