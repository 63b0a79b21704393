// Package binder is the HTTP boundary adapter for the validation engine. It
// merges the raw sources of a request — JSON body, query string, and router
// path parameters — into the single flat map[string]any the engine consumes,
// and offers a handler wrapper that rejects invalid payloads before they
// reach business code.
//
// Merge precedence is fixed: body values are overridden by query parameters,
// which are overridden by path parameters, so the most specific source wins.
//
// The package never interprets validation results beyond serializing them;
// status codes and content negotiation stay at this boundary and never leak
// into the engine.
package binder
