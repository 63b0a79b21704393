package checker

import "strings"

// DefaultPasswordMinLength applies when a password rule carries no explicit
// minimum.
const DefaultPasswordMinLength = 8

// passwordSymbols is the fixed punctuation set a strong password must draw
// at least one character from.
const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

// Password reports whether the value meets the strength policy: at least
// minLen characters with one uppercase letter, one lowercase letter, one
// digit, and one symbol. A minLen of zero or below falls back to
// DefaultPasswordMinLength.
func Password(value string, minLen int) bool {
	if minLen <= 0 {
		minLen = DefaultPasswordMinLength
	}
	if len([]rune(value)) < minLen {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}
