package payload

import "fmt"

// Kind tells which transformation path produced a Content.
type Kind uint8

const (
	// KindRaw means the payload was returned unchanged.
	KindRaw Kind = iota
	// KindBinaryDigits means the payload was a binary-digit string.
	KindBinaryDigits
	// KindBase64Raw means the payload was Base64 wrapping arbitrary bytes.
	KindBase64Raw
	// KindBase64BinaryDigits means the payload was Base64 wrapping a binary-digit string.
	KindBase64BinaryDigits
)

var kindNames = map[Kind]string{
	KindRaw:                "raw",
	KindBinaryDigits:       "binary-digits",
	KindBase64Raw:          "base64",
	KindBase64BinaryDigits: "base64-binary-digits",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsBase64 reports whether the payload carried a Base64 layer.
func (k Kind) IsBase64() bool {
	return k == KindBase64Raw || k == KindBase64BinaryDigits
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindRaw, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Content is the resolved form of a QR payload.
// Bytes is owned by the caller and never aliases a partially converted digit string.
type Content struct {
	Bytes []byte
	Kind  Kind
}
