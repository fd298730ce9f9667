package payload

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/qrdecode/pkg/logger"
)

// Resolver classifies raw QR payloads and normalizes them to their final bytes.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug traces of each decision.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver. Without options it logs nothing.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve runs the default, silent Resolver over raw.
func Resolve(raw []byte) Content {
	return defaultResolver.Resolve(context.Background(), raw)
}

// Resolve decides what raw really is. The rules are evaluated in order and the
// first match wins:
//
//  1. raw is an ASCII binary-digit string: the packed bytes.
//  2. raw is not canonical Base64: raw unchanged.
//  3. the Base64-decoded bytes are a binary-digit string: the packed bytes.
//  4. otherwise the Base64-decoded bytes.
//
// The binary-digit form is tested first because digit strings are often
// valid Base64 as well. Resolve never fails and never mutates raw.
func (r *Resolver) Resolve(ctx context.Context, raw []byte) Content {
	if packed, ok := packBinaryDigits(raw); ok {
		r.trace(ctx, "binary digit string detected", KindBinaryDigits, len(raw), len(packed))
		return Content{Bytes: packed, Kind: KindBinaryDigits}
	}

	inner, ok := decodeBase64(raw)
	if !ok {
		r.trace(ctx, "using raw payload", KindRaw, len(raw), len(raw))
		return Content{Bytes: clone(raw), Kind: KindRaw}
	}

	if packed, ok := packBinaryDigits(inner); ok {
		r.trace(ctx, "base64 wrapped binary digit string detected", KindBase64BinaryDigits, len(raw), len(packed))
		return Content{Bytes: packed, Kind: KindBase64BinaryDigits}
	}

	r.trace(ctx, "base64 payload detected", KindBase64Raw, len(raw), len(inner))
	return Content{Bytes: inner, Kind: KindBase64Raw}
}

func (r *Resolver) trace(ctx context.Context, msg string, kind Kind, in, out int) {
	r.logger.DebugContext(ctx, msg,
		logger.Component("resolver"),
		logger.Kind(kind),
		logger.InputSize(in),
		logger.OutputSize(out),
	)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
