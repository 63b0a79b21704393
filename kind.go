package inputkit

import "fmt"

// Kind identifies the semantic type a Rule checks a value against. The set
// is closed: engine dispatch switches exhaustively over every constant below,
// so a new kind cannot be added without teaching the engine about it.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindEmail
	KindURL
	KindDate
	KindCPF
	KindCNPJ
	KindCEP
	KindPhone
	KindISBN
	KindUUID
	KindJSON
	KindBase64
	KindPassword
)

var kindNames = [...]string{
	KindString:   "string",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindEmail:    "email",
	KindURL:      "url",
	KindDate:     "date",
	KindCPF:      "cpf",
	KindCNPJ:     "cnpj",
	KindCEP:      "cep",
	KindPhone:    "phone",
	KindISBN:     "isbn",
	KindUUID:     "uuid",
	KindJSON:     "json",
	KindBase64:   "base64",
	KindPassword: "password",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves the textual form used in schema files back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
