package qrcode

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	// Image formats accepted by Scan.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/dmitrymomot/qrdecode/pkg/logger"
)

// byteCharset maps every byte of a byte-mode segment to the rune of the same value.
const byteCharset = "ISO-8859-1"

// Scanner extracts the payload of the first QR symbol found in an image.
// It is safe for concurrent use; every call builds its own reader.
type Scanner struct {
	tryHarder bool
	logger    *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithTryHarder trades speed for accuracy on noisy or skewed photos.
func WithTryHarder(enabled bool) Option {
	return func(s *Scanner) {
		s.tryHarder = enabled
	}
}

// WithLogger sets the scanner logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScanner creates a Scanner.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanFile opens the image at path and scans it. The file is closed before
// ScanFile returns.
func (s *Scanner) ScanFile(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer func() { _ = f.Close() }()

	return s.Scan(ctx, f)
}

// Scan decodes an image in any registered format (png, jpeg, gif, bmp, tiff,
// webp) from r and returns the payload of the first QR symbol.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	s.logger.DebugContext(ctx, "image decoded",
		logger.Component("scanner"),
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)

	return s.ScanImage(ctx, img)
}

// ScanImage returns the payload of the first QR symbol in img.
func (s *Scanner) ScanImage(ctx context.Context, img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_CHARACTER_SET: byteCharset,
	}
	if s.tryHarder {
		hints[gozxing.DecodeHintType_TRY_HARDER] = true
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSymbolFound, err)
	}

	data := symbolBytes(result.GetText())
	s.logger.DebugContext(ctx, "qr symbol decoded",
		logger.Component("scanner"),
		logger.InputSize(len(data)),
	)
	return data, nil
}

// symbolBytes recovers the raw payload from the decoded text. Byte segments
// are decoded as ISO-8859-1, so each rune is exactly one byte of the symbol;
// numeric and alphanumeric segments are ASCII already. A symbol whose ECI
// header selects another character set can yield runes above 0xFF, and its
// text is returned as UTF-8 instead.
func symbolBytes(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xff {
			return []byte(text)
		}
		out = append(out, byte(r))
	}
	return out
}
