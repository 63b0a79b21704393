// Package sanitizer normalizes untrusted input independently of rule
// evaluation: markup stripping, whitespace normalization, unicode
// normalization, and slice cleanup.
//
// The package has two layers. The string and slice helpers are small pure
// functions meant to be composed with Apply or Compose into reusable
// pipelines. Clean is the recursive walker the validation engine uses for
// whole-payload cleanup: it applies the standard string pipeline to every
// string reachable through nested maps and slices and leaves every other
// type untouched. Clean is idempotent: sanitizing twice yields the same
// result as sanitizing once.
package sanitizer
