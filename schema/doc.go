// Package schema provides named, reusable rule sets for recurring record
// shapes, a read-only registry to share them across an application, and a
// YAML loader for declaring schemas outside of Go code.
//
// Presets are plain data: each constructor returns a fresh inputkit.Schema
// and carries no runtime logic. Constructors whose rules depend on the
// current date take an explicit clock function instead of reading the
// ambient clock, so tests can freeze time.
//
// An update variant of any schema is derived mechanically with Update: the
// base rules are reused with required-ness switched off, so a partial
// payload only has its present fields checked.
package schema
