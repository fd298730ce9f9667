// Package qrcode reads the payload of a QR symbol from an image.
//
// The package is a thin wrapper around github.com/makiuchi-d/gozxing. It
// accepts png, jpeg and gif through the standard library and bmp, tiff and
// webp through golang.org/x/image, and returns the bytes of the first symbol
// it finds. What those bytes mean is decided by the payload package.
//
// # Architecture
//
// Scanner.Scan decodes the image, Scanner.ScanImage binarizes it and runs the
// QR reader. Byte-mode segments are read as ISO-8859-1 and mapped back rune
// by rune, so the returned bytes are the symbol's data across all of its
// segments, whether or not they form valid text.
//
// # Usage
//
//	scanner := qrcode.NewScanner(qrcode.WithTryHarder(true), qrcode.WithLogger(log))
//	raw, err := scanner.ScanFile(ctx, "photo.jpg")
//	if errors.Is(err, qrcode.ErrNoSymbolFound) {
//		// nothing to decode
//	}
//
// # Error Handling
//
//   - ErrImageLoad     – the file could not be opened or is not a known image format.
//   - ErrNoSymbolFound – no readable QR symbol in the image.
//   - ErrNilImage      – ScanImage was called with a nil image.
package qrcode
