package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// WithContext embeds the logger into ctx for retrieval by FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger embedded in ctx, or a disabled logger
// when none was attached. Always safe to call.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
