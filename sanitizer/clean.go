package sanitizer

// cleanString is the standard per-string pipeline applied by Clean.
var cleanString = Compose(StripTags, CollapseWhitespace)

// CleanString strips angle-bracket tag spans, collapses interior whitespace
// runs to single spaces, and trims the ends.
func CleanString(s string) string {
	return cleanString(s)
}

// Clean walks an arbitrary value and sanitizes every string in it: slices
// are mapped element-wise, maps value-wise, strings through CleanString,
// and every other type passes through unchanged. The input is not mutated;
// containers are rebuilt.
func Clean(value any) any {
	switch v := value.(type) {
	case string:
		return CleanString(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Clean(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = CleanString(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = Clean(item)
		}
		return out
	default:
		return value
	}
}
