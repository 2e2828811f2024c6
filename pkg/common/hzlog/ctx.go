package hzlog

import (
	"context"
	"log/slog"
)

type attrsKey struct{}

// ContextWith returns a context carrying attrs in addition to any
// attrs already stored. Every record logged through the hzlog handler
// with that context gets them attached.
func ContextWith(ctx context.Context, attrs ...slog.Attr) context.Context {
	oldAttrs := getAttrs(ctx)

	newAttrs := make([]slog.Attr, 0, len(oldAttrs)+len(attrs))
	newAttrs = append(newAttrs, oldAttrs...)
	newAttrs = append(newAttrs, attrs...)

	return context.WithValue(ctx, attrsKey{}, newAttrs)
}

func getAttrs(ctx context.Context) []slog.Attr {
	currentAttrs := ctx.Value(attrsKey{})
	if currentAttrs == nil {
		return nil
	}

	// cannot panic
	return currentAttrs.([]slog.Attr)
}

type ctxHandler struct {
	slog.Handler
}

func newCtxHandler(h slog.Handler) *ctxHandler {
	return &ctxHandler{Handler: h}
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(getAttrs(ctx)...)
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
