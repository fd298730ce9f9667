package qrcode

import "errors"

var (
	// ErrNoSymbolFound is returned when an image contains no readable QR symbol.
	ErrNoSymbolFound = errors.New("no QR code found")
	// ErrImageLoad is returned when the image cannot be opened or decoded.
	ErrImageLoad = errors.New("failed to load image")
	// ErrNilImage is returned when ScanImage receives a nil image.
	ErrNilImage = errors.New("image is nil")
)
