package checker

import (
	"encoding/base64"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// uuidShapeRegex enforces the hyphenated 8-4-4-4-12 shape including the
// version nibble (1-5) and the RFC 4122 variant nibble.
var uuidShapeRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// Email reports whether the value is a valid address for typical web use:
// it must parse per RFC 5322 and additionally carry a dotted domain with no
// empty labels.
func Email(value string) bool {
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t") {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL reports whether the value parses as an absolute URL with both a scheme
// and a host.
func URL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// UUID reports whether the value is a canonical hyphenated UUID with a valid
// version and variant. The cheap shape check runs before parsing.
func UUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if !uuidShapeRegex.MatchString(value) {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}

// JSON accepts any already-structured (non-string) value; a string must be a
// syntactically valid JSON document.
func JSON(value any) bool {
	s, ok := value.(string)
	if !ok {
		return true
	}
	if strings.TrimSpace(s) == "" {
		return false
	}
	return gojson.Valid([]byte(s))
}

// Base64 reports whether the value round-trips through the standard padded
// alphabet unchanged. Unpadded and URL-safe input is rejected; callers that
// need those variants should decode explicitly.
func Base64(value string) bool {
	if value == "" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}

	return base64.StdEncoding.EncodeToString(decoded) == value
}
