// Package inputkit provides a schema-driven validation and sanitization
// engine for untrusted, loosely-typed input such as decoded JSON bodies,
// query strings, and form submissions.
//
// The package promotes declarative validation: a Rule is a plain immutable
// value describing one check for one field (semantic kind, required-ness,
// bounds, pattern, enum, custom predicate, value transform), and a Schema is
// a reusable mapping from field name to an ordered rule list. A Validator
// evaluates rules against a flat map[string]any and accumulates every
// field-level failure as data rather than aborting, so callers always get a
// complete picture of what is wrong with a payload.
//
// # Architecture
//
// Core building blocks:
//   - Kind      – closed enum of supported semantic types; engine dispatch is
//     an exhaustive switch, so adding a kind forces every call site to handle it
//   - Rule      – immutable description of a single check
//   - Schema    – field name → ordered rule list
//   - ErrorItem – one failure: field, message, offending value, stable code
//   - Result    – aggregate verdict plus sanitized copy of the input
//   - Validator – per-call working set; no shared state between calls
//
// The low-level checkers live in the checker subpackage and are pure
// functions, so they can be used directly without the engine. Recursive
// input cleanup lives in the sanitizer subpackage and is independent of rule
// evaluation. HTTP request flattening lives in the binder subpackage.
//
// # Usage
//
//	v := inputkit.New(payload).
//		Field("email", inputkit.Rule{Kind: inputkit.KindEmail, Required: true}).
//		Field("isbn", inputkit.Rule{Kind: inputkit.KindISBN, Required: true})
//	if err := v.Err(); err != nil {
//		// err carries every ErrorItem and a 422 transport hint
//	}
//	res := v.Result() // res.Sanitized holds the transformed input
//
// # Concurrency
//
// Each Validator owns its working copy of the input; nothing is shared or
// retained between calls. Schemas are plain read-only data, so concurrent
// validation against the same Schema is safe without locking.
package inputkit
