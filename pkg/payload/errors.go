package payload

import "errors"

var (
	// ErrInvalidBinaryString is returned when a digit string still contains
	// characters other than '0' and '1' after whitespace is removed.
	ErrInvalidBinaryString = errors.New("invalid binary string")

	// ErrUnknownKind is returned when a textual kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown content kind")
)
