package payload

import (
	"bytes"
	"encoding/base64"
)

// strictEncoding rejects non-zero padding bits. Newlines are still skipped by
// the decoder, so the round-trip comparison in IsBase64 is what rejects them.
var strictEncoding = base64.StdEncoding.Strict()

// IsBase64 reports whether data is a canonical standard Base64 encoding:
// it must decode strictly and re-encode to exactly the same bytes.
func IsBase64(data []byte) bool {
	_, ok := decodeBase64(data)
	return ok
}

// decodeBase64 returns the decoded bytes of a canonical Base64 input.
func decodeBase64(data []byte) ([]byte, bool) {
	decoded := make([]byte, strictEncoding.DecodedLen(len(data)))
	n, err := strictEncoding.Decode(decoded, data)
	if err != nil {
		return nil, false
	}
	decoded = decoded[:n]

	if !bytes.Equal(data, []byte(strictEncoding.EncodeToString(decoded))) {
		return nil, false
	}
	return decoded, true
}
