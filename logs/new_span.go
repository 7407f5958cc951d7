package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan tags ctx with a fresh span, so all records of one run can be grouped.
type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		var args []any
		if parent, ok := ctx.Value(SpanKey).(Span); ok {
			args = append(args, "parent", parent)
		}
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.InfoContext(ctx, "new span: "+what, args...)
		return ctx, span
	}
}
