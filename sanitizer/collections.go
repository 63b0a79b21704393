package sanitizer

import "strings"

// FilterEmpty drops whitespace-only entries so empty form fields do not
// pollute the cleaned slice.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Deduplicate removes repeated entries, preserving the first occurrence
// order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// LimitLength caps a slice at maxLen entries to guard against abusive input
// arrays.
func LimitLength[T any](slice []T, maxLen int) []T {
	if maxLen <= 0 {
		return []T{}
	}
	if len(slice) <= maxLen {
		return slice
	}
	return slice[:maxLen]
}
