package schema

import (
	"regexp"
	"time"

	"github.com/inputkit/inputkit"
	"github.com/inputkit/inputkit/sanitizer"
)

// brazilStates holds the 27 federative unit codes.
var brazilStates = []any{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

var sortFieldRegex = regexp.MustCompile(`^-?[a-z][a-z0-9_]*$`)

// cleanText applies the standard string cleanup as a rule transform.
func cleanText(v any) any {
	if s, ok := v.(string); ok {
		return sanitizer.CleanString(s)
	}
	return v
}

// lowerEmail normalizes an address for case-insensitive comparison.
func lowerEmail(v any) any {
	if s, ok := v.(string); ok {
		return sanitizer.TrimToLower(s)
	}
	return v
}

// onlyDigits strips formatting from documents such as CPF, CEP, and phone
// numbers so the stored form is canonical.
func onlyDigits(v any) any {
	if s, ok := v.(string); ok {
		return sanitizer.KeepDigits(s)
	}
	return v
}

// cleanTags deduplicates and drops empty entries from a string slice.
func cleanTags(v any) any {
	switch tags := v.(type) {
	case []string:
		return sanitizer.Deduplicate(sanitizer.FilterEmpty(tags))
	case []any:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				out = append(out, sanitizer.CleanString(s))
			}
		}
		return sanitizer.Deduplicate(sanitizer.FilterEmpty(out))
	}
	return v
}

// Book describes a book record. The publication year is bounded by the
// current year, taken from the injected clock.
func Book(now func() time.Time) inputkit.Schema {
	maxYear := float64(now().Year())

	return inputkit.Schema{
		"title": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Min:       inputkit.Bound(1),
			Max:       inputkit.Bound(200),
			Transform: cleanText,
		}},
		"author": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Min:       inputkit.Bound(1),
			Max:       inputkit.Bound(120),
			Transform: cleanText,
		}},
		"isbn": {{
			Kind:     inputkit.KindISBN,
			Required: true,
			Message:  "must be a valid ISBN-10 or ISBN-13",
		}},
		"year": {{
			Kind: inputkit.KindNumber,
			Min:  inputkit.Bound(1450),
			Max:  inputkit.Bound(maxYear),
		}},
		"price": {{
			Kind: inputkit.KindNumber,
			Min:  inputkit.Bound(0),
		}},
		"tags": {{
			Kind:      inputkit.KindJSON,
			Transform: cleanTags,
		}},
		"description": {{
			Kind:      inputkit.KindString,
			Max:       inputkit.Bound(2000),
			Transform: cleanText,
		}},
	}
}

// User describes an account record with Brazilian documents.
func User() inputkit.Schema {
	return inputkit.Schema{
		"name": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Min:       inputkit.Bound(2),
			Max:       inputkit.Bound(100),
			Transform: cleanText,
		}},
		"email": {{
			Kind:      inputkit.KindEmail,
			Required:  true,
			Transform: lowerEmail,
		}},
		"password": {{
			Kind:     inputkit.KindPassword,
			Required: true,
			Min:      inputkit.Bound(8),
		}},
		"cpf": {{
			Kind:      inputkit.KindCPF,
			Required:  true,
			Transform: onlyDigits,
		}},
		"phone": {{
			Kind:      inputkit.KindPhone,
			Transform: onlyDigits,
		}},
		"birth_date": {{
			Kind: inputkit.KindDate,
		}},
		"website": {{
			Kind: inputkit.KindURL,
		}},
	}
}

// Address describes a Brazilian postal address.
func Address() inputkit.Schema {
	return inputkit.Schema{
		"street": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Min:       inputkit.Bound(1),
			Max:       inputkit.Bound(200),
			Transform: cleanText,
		}},
		"number": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Max:       inputkit.Bound(10),
			Transform: cleanText,
		}},
		"complement": {{
			Kind:      inputkit.KindString,
			Max:       inputkit.Bound(100),
			Transform: cleanText,
		}},
		"district": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Max:       inputkit.Bound(100),
			Transform: cleanText,
		}},
		"city": {{
			Kind:      inputkit.KindString,
			Required:  true,
			Max:       inputkit.Bound(100),
			Transform: cleanText,
		}},
		"state": {{
			Kind:     inputkit.KindString,
			Required: true,
			Enum:     brazilStates,
			Message:  "must be a valid Brazilian state code",
		}},
		"cep": {{
			Kind:      inputkit.KindCEP,
			Required:  true,
			Transform: onlyDigits,
		}},
	}
}

// Pagination describes the usual list-endpoint query parameters.
func Pagination() inputkit.Schema {
	return inputkit.Schema{
		"page": {{
			Kind: inputkit.KindNumber,
			Min:  inputkit.Bound(1),
		}},
		"per_page": {{
			Kind: inputkit.KindNumber,
			Min:  inputkit.Bound(1),
			Max:  inputkit.Bound(100),
		}},
		"sort": {{
			Kind:    inputkit.KindString,
			Pattern: sortFieldRegex,
			Message: "must be a field name, optionally prefixed with - for descending order",
		}},
	}
}
