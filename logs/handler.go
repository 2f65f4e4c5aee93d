package logs

import (
	"context"
	"log/slog"
)

// Handler stamps the context span onto every record before fanning out.
type Handler struct {
	slog.Handler
}

var _ slog.Handler = new(Handler)

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(SpanKey); v != nil {
		record.Add("logs.span", v.(Span))
	}
	return h.Handler.Handle(ctx, record)
}
