package inputkit

// Code is the stable machine-readable identifier of a failure class. Codes
// are part of the wire contract and must not change between releases.
type Code string

const (
	CodeRequired         Code = "REQUIRED"
	CodeInvalidString    Code = "INVALID_STRING"
	CodeInvalidNumber    Code = "INVALID_NUMBER"
	CodeInvalidBoolean   Code = "INVALID_BOOLEAN"
	CodeInvalidEmail     Code = "INVALID_EMAIL"
	CodeInvalidURL       Code = "INVALID_URL"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidCPF       Code = "INVALID_CPF"
	CodeInvalidCNPJ      Code = "INVALID_CNPJ"
	CodeInvalidCEP       Code = "INVALID_CEP"
	CodeInvalidPhone     Code = "INVALID_PHONE"
	CodeInvalidISBN      Code = "INVALID_ISBN"
	CodeInvalidUUID      Code = "INVALID_UUID"
	CodeInvalidJSON      Code = "INVALID_JSON"
	CodeInvalidBase64    Code = "INVALID_BASE64"
	CodeWeakPassword     Code = "WEAK_PASSWORD"
	CodeInvalidEnumValue Code = "INVALID_ENUM_VALUE"
	CodePatternMismatch  Code = "PATTERN_MISMATCH"
	CodeCustomFailed     Code = "CUSTOM_VALIDATION_FAILED"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

var defaultMessages = map[Code]string{
	CodeRequired:         "field is required",
	CodeInvalidString:    "must be a string within the allowed length",
	CodeInvalidNumber:    "must be a number within the allowed range",
	CodeInvalidBoolean:   "must be a boolean value",
	CodeInvalidEmail:     "must be a valid email address",
	CodeInvalidURL:       "must be a valid URL",
	CodeInvalidDate:      "must be a valid date",
	CodeInvalidCPF:       "must be a valid CPF",
	CodeInvalidCNPJ:      "must be a valid CNPJ",
	CodeInvalidCEP:       "must be a valid CEP",
	CodeInvalidPhone:     "must be a valid phone number",
	CodeInvalidISBN:      "must be a valid ISBN-10 or ISBN-13",
	CodeInvalidUUID:      "must be a valid UUID",
	CodeInvalidJSON:      "must be valid JSON",
	CodeInvalidBase64:    "must be a valid base64 encoded string",
	CodeWeakPassword:     "password does not meet the strength requirements",
	CodeInvalidEnumValue: "must be one of the allowed values",
	CodePatternMismatch:  "does not match the expected format",
	CodeCustomFailed:     "failed custom validation",
	CodeValidationFailed: "validation failed",
}

// DefaultMessage returns the built-in human-readable message for a code.
func DefaultMessage(c Code) string {
	if m, ok := defaultMessages[c]; ok {
		return m
	}
	return defaultMessages[CodeValidationFailed]
}

// codeFor maps a rule kind to the code reported when its checker rejects a value.
func codeFor(k Kind) Code {
	switch k {
	case KindString:
		return CodeInvalidString
	case KindNumber:
		return CodeInvalidNumber
	case KindBoolean:
		return CodeInvalidBoolean
	case KindEmail:
		return CodeInvalidEmail
	case KindURL:
		return CodeInvalidURL
	case KindDate:
		return CodeInvalidDate
	case KindCPF:
		return CodeInvalidCPF
	case KindCNPJ:
		return CodeInvalidCNPJ
	case KindCEP:
		return CodeInvalidCEP
	case KindPhone:
		return CodeInvalidPhone
	case KindISBN:
		return CodeInvalidISBN
	case KindUUID:
		return CodeInvalidUUID
	case KindJSON:
		return CodeInvalidJSON
	case KindBase64:
		return CodeInvalidBase64
	case KindPassword:
		return CodeWeakPassword
	}
	return CodeValidationFailed
}
