package payload

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// bitsPerByte is the size of one digit group.
const bitsPerByte = 8

// IsBinaryDigitText reports whether text consists only of '0', '1', space and
// newline. Tabs and carriage returns are not part of the alphabet.
// Empty text is accepted.
func IsBinaryDigitText(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0', '1', ' ', '\n':
		default:
			return false
		}
	}
	return true
}

// ParseBinaryDigits packs a whitespace-separated string of binary digits into
// bytes, eight digits per byte, most significant bit first.
//
// All whitespace is removed before packing: Unicode white space plus the
// information separators U+001C..U+001F. A final group shorter than eight
// digits is converted by its own binary value, so "101" yields 0x05.
//
// Example:
//
//	b, err := payload.ParseBinaryDigits("01001000 01101001") // []byte("Hi")
func ParseBinaryDigits(text string) ([]byte, error) {
	digits := strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, text)

	for _, r := range digits {
		if r != '0' && r != '1' {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidBinaryString, r)
		}
	}

	out := make([]byte, 0, (len(digits)+bitsPerByte-1)/bitsPerByte)
	for i := 0; i < len(digits); i += bitsPerByte {
		group := digits[i:min(i+bitsPerByte, len(digits))]
		v, err := strconv.ParseUint(group, 2, bitsPerByte)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBinaryString, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// packBinaryDigits is the resolver stage for the binary-digit interpretation.
// It reports false when data is not ASCII or not in the digit alphabet.
func packBinaryDigits(data []byte) ([]byte, bool) {
	text, ok := asciiText(data)
	if !ok || !IsBinaryDigitText(text) {
		return nil, false
	}
	packed, err := ParseBinaryDigits(text)
	if err != nil {
		return nil, false
	}
	return packed, true
}

// asciiText returns data as a string when every byte is 7-bit ASCII.
func asciiText(data []byte) (string, bool) {
	for _, b := range data {
		if b >= 0x80 {
			return "", false
		}
	}
	return string(data), true
}
