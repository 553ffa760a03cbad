package logging

import (
	"context"
	"log/slog"
)

// ComponentKey is the attribute naming the component a logger belongs to.
const ComponentKey = "component"

// componentHandler drops records below the level configured for the
// component recorded through WithAttrs.
type componentHandler struct {
	next      slog.Handler
	spec      Spec
	component string
}

// NewHandler wraps next so that records are filtered according to spec.
func NewHandler(next slog.Handler, spec Spec) slog.Handler {
	return &componentHandler{next: next, spec: spec}
}

func (h *componentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.spec.LevelFor(h.component).Slog()
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.next = h.next.WithAttrs(attrs)
	for _, a := range attrs {
		if a.Key == ComponentKey {
			c.component = a.Value.String()
		}
	}
	return &c
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.next = h.next.WithGroup(name)
	return &c
}
