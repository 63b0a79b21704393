package checker

import "strings"

// ISBN validates a book identifier in either ISBN-10 or ISBN-13 form.
// Hyphens and spaces are stripped first; any resulting length other than 10
// or 13 fails.
func ISBN(value string) bool {
	code := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, value)

	switch len(code) {
	case 10:
		return isbn10(code)
	case 13:
		return isbn13(code)
	}
	return false
}

// isbn10 checks the mod-11 weighted sum with weights 10 down to 1. The last
// position may be 'X', standing for the value 10.
func isbn10(code string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		c := code[i]
		var digit int
		switch {
		case c >= '0' && c <= '9':
			digit = int(c - '0')
		case (c == 'X' || c == 'x') && i == 9:
			digit = 10
		default:
			return false
		}
		sum += digit * (10 - i)
	}
	return sum%11 == 0
}

// isbn13 checks the mod-10 sum with weights alternating 1 and 3 from the
// first position.
func isbn13(code string) bool {
	sum := 0
	for i := 0; i < 13; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}
	return sum%10 == 0
}
