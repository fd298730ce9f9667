// Package payload works out what the bytes read from a QR symbol really are
// and turns them into the bytes that should be written out.
//
// A QR payload can be:
//
//   - raw bytes meant to be used as-is,
//   - an ASCII string of '0'/'1' digits separated by spaces or newlines that
//     packs bytes eight digits at a time,
//   - canonical Base64 wrapping either of the above.
//
// # Architecture
//
// Two pure predicates feed a fixed decision tree:
//
//   - IsBase64 strictly decodes the input and re-encodes it; only an exact
//     round trip counts, so arbitrary bytes that happen to use the Base64
//     alphabet are not mistaken for an encoding.
//   - IsBinaryDigitText and ParseBinaryDigits recognize and pack digit strings.
//
// Resolver.Resolve applies them in order (digits, Base64, Base64 of digits,
// raw) and tags the result with a Kind. Every stage returns an explicit
// (value, ok) outcome. Resolve itself never fails.
//
// # Usage
//
//	content := payload.Resolve([]byte("SGVsbG8="))
//	fmt.Println(string(content.Bytes), content.Kind) // Hello base64
//
//	r := payload.NewResolver(payload.WithLogger(log))
//	content = r.Resolve(ctx, raw)
//
// # Error Handling
//
// Only direct callers of ParseBinaryDigits see ErrInvalidBinaryString; the
// resolver treats it as "not a digit string" and moves on.
//
// A digit count that is not a multiple of eight is accepted: the last short
// group is converted by its own value ("101" becomes 0x05).
package payload
