package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes surrounding whitespace and lowercases the result.
// Useful for emails and other case-insensitive identifiers.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// StripTags removes angle-bracket tag spans. Entities are left as-is so the
// operation stays idempotent.
func StripTags(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}

// CollapseWhitespace replaces every interior run of whitespace with a single
// space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters, keeping tabs and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only the decimal digits of s. Handy for normalizing
// formatted documents such as CPF, CNPJ, CEP, and phone numbers before
// storage.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// SingleLine folds a multi-line string into one line with normalized
// whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return CollapseWhitespace(s)
}

// Truncate cuts s to at most maxLen runes.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// NormalizeUnicode brings s into NFC form so visually identical inputs
// compare equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}
