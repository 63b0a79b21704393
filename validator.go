package inputkit

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/inputkit/inputkit/checker"
	"github.com/inputkit/inputkit/sanitizer"
)

// Validator evaluates rules against one input mapping. Every call to New
// builds a fresh working set; nothing is shared or retained between
// validation passes, so distinct Validators may run concurrently.
type Validator struct {
	sanitized map[string]any
	errors    []ErrorItem
}

// Option customizes a Validator at construction time.
type Option func(*Validator)

// WithSanitize runs sanitizer.Clean over the whole input before any rule is
// evaluated: HTML tags stripped, whitespace trimmed and collapsed,
// recursively through nested maps and slices.
func WithSanitize() Option {
	return func(v *Validator) {
		for field, value := range v.sanitized {
			v.sanitized[field] = sanitizer.Clean(value)
		}
	}
}

// New builds a Validator over its own copy of data. The input map is never
// mutated.
func New(data map[string]any, opts ...Option) *Validator {
	v := &Validator{
		sanitized: make(map[string]any, len(data)),
		errors:    []ErrorItem{},
	}
	maps.Copy(v.sanitized, data)

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Field evaluates the named field against each rule in order. The first
// failing rule contributes exactly one ErrorItem and stops evaluation for
// this field; other fields are unaffected.
func (v *Validator) Field(name string, rules ...Rule) *Validator {
	for _, r := range rules {
		if item := v.eval(name, r); item != nil {
			v.errors = append(v.errors, *item)
			break
		}
	}
	return v
}

// Apply runs Field for every entry of the schema. Fields are visited in
// sorted name order so the error list is deterministic; fields present in
// the input but absent from the schema are left alone (they stay in
// Sanitized untouched).
func (v *Validator) Apply(s Schema) *Validator {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		v.Field(name, s[name]...)
	}
	return v
}

// Custom evaluates a predicate over the whole working mapping, for
// cross-field invariants that no single-field rule can express. At most one
// ErrorItem is appended per call. A panicking predicate counts as a failure
// and never aborts the pass.
func (v *Validator) Custom(check func(data map[string]any) bool, message string) *Validator {
	if message == "" {
		message = DefaultMessage(CodeCustomFailed)
	}

	if !safeCheck(func() bool { return check(v.sanitized) }) {
		v.errors = append(v.errors, ErrorItem{
			Field:   "",
			Message: message,
			Value:   nil,
			Code:    CodeCustomFailed,
		})
	}
	return v
}

// Result returns an independent snapshot of the current verdict.
func (v *Validator) Result() Result {
	res := Result{
		Valid:     len(v.errors) == 0,
		Errors:    make([]ErrorItem, len(v.errors)),
		Sanitized: make(map[string]any, len(v.sanitized)),
	}
	copy(res.Errors, v.errors)
	maps.Copy(res.Sanitized, v.sanitized)
	return res
}

// Err returns nil when every rule passed, or an *Error aggregating the full
// item list with an unprocessable-entity transport hint.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return newError(v.Result().Errors)
}

// eval runs one rule over one field following the fixed step order:
// required, empty short-circuit, transform, kind check, custom predicate,
// enum membership, pattern match. The first failing step decides the code.
func (v *Validator) eval(field string, r Rule) *ErrorItem {
	value, present := v.sanitized[field]

	if !present || isEmpty(value) {
		if r.Required {
			return v.fail(field, r, value, CodeRequired)
		}
		return nil
	}

	if r.Transform != nil {
		value = r.Transform(value)
		v.sanitized[field] = value
	}

	if !checkKind(value, r) {
		return v.fail(field, r, value, codeFor(r.Kind))
	}

	if r.Custom != nil && !safeCheck(func() bool { return r.Custom(value) }) {
		return v.fail(field, r, value, CodeCustomFailed)
	}

	if len(r.Enum) > 0 && !slices.ContainsFunc(r.Enum, func(allowed any) bool { return reflect.DeepEqual(allowed, value) }) {
		return v.fail(field, r, value, CodeInvalidEnumValue)
	}

	if r.Pattern != nil && !r.Pattern.MatchString(stringify(value)) {
		return v.fail(field, r, value, CodePatternMismatch)
	}

	return nil
}

func (v *Validator) fail(field string, r Rule, value any, code Code) *ErrorItem {
	message := r.Message
	if message == "" {
		message = DefaultMessage(code)
	}
	return &ErrorItem{Field: field, Message: message, Value: value, Code: code}
}

// checkKind dispatches to the type-specific checker. The switch is
// exhaustive over every Kind constant; an out-of-range kind fails closed.
func checkKind(value any, r Rule) bool {
	switch r.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return false
		}
		n := float64(len([]rune(strings.TrimSpace(s))))
		return inBounds(n, r.Min, r.Max)
	case KindNumber:
		f, ok := checker.Number(value)
		return ok && inBounds(f, r.Min, r.Max)
	case KindBoolean:
		return checker.Boolean(value)
	case KindEmail:
		s, ok := value.(string)
		return ok && checker.Email(s)
	case KindURL:
		s, ok := value.(string)
		return ok && checker.URL(s)
	case KindDate:
		return checker.Date(value)
	case KindCPF:
		s, ok := value.(string)
		return ok && checker.CPF(s)
	case KindCNPJ:
		s, ok := value.(string)
		return ok && checker.CNPJ(s)
	case KindCEP:
		s, ok := value.(string)
		return ok && checker.CEP(s)
	case KindPhone:
		s, ok := value.(string)
		return ok && checker.Phone(s)
	case KindISBN:
		s, ok := value.(string)
		return ok && checker.ISBN(s)
	case KindUUID:
		s, ok := value.(string)
		return ok && checker.UUID(s)
	case KindJSON:
		return checker.JSON(value)
	case KindBase64:
		s, ok := value.(string)
		return ok && checker.Base64(s)
	case KindPassword:
		s, ok := value.(string)
		if !ok {
			return false
		}
		minLen := checker.DefaultPasswordMinLength
		if r.Min != nil {
			minLen = int(*r.Min)
		}
		return checker.Password(s, minLen)
	}
	return false
}

// safeCheck runs a predicate, converting a panic into a failed check so one
// misbehaving rule cannot abort validation of the remaining fields.
func safeCheck(check func() bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return check()
}

func inBounds(n float64, lo, hi *float64) bool {
	if lo != nil && n < *lo {
		return false
	}
	if hi != nil && n > *hi {
		return false
	}
	return true
}

// isEmpty treats nil and whitespace-only strings as absent for the purposes
// of the required check.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
