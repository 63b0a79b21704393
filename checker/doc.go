// Package checker contains the pure per-kind value checkers behind the
// inputkit engine: format checks (email, URL, UUID, JSON, base64), the
// checksum algorithms for Brazilian registry documents (CPF, CNPJ) and book
// identifiers (ISBN-10/13), plus loose coercions for numbers, booleans, and
// dates.
//
// Every function is total and stateless: it takes a value, returns a
// verdict, and performs no I/O. The checkers are exported so they can be
// used directly without building a Rule, e.g. in struct constructors or
// one-off guards.
package checker
