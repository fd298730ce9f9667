package decoder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrdecode/pkg/logger"
)

type runIDKey struct{}

// WithRunID returns a context carrying id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// RunIDExtractor adds the run id to every record logged with a run context.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := RunIDFromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

// ensureRunID keeps an id set by the caller and generates one otherwise.
func ensureRunID(ctx context.Context) (context.Context, string) {
	if id := RunIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRunID(ctx, id), id
}
