package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// SwappableHandler routes records to a handler that can be replaced at runtime.
// Handlers derived through WithAttrs/WithGroup share the swap point, so loggers
// built before a swap keep their attributes and follow the new destination.
type SwappableHandler struct {
	root  *atomic.Pointer[slog.Handler]
	steps []func(slog.Handler) slog.Handler
}

// NewSwappableHandler creates a handler with an initial destination.
func NewSwappableHandler(initial slog.Handler) *SwappableHandler {
	root := new(atomic.Pointer[slog.Handler])
	root.Store(&initial)
	return &SwappableHandler{root: root}
}

// Swap atomically replaces the destination for this handler and every
// handler derived from it.
func (sh *SwappableHandler) Swap(newHandler slog.Handler) {
	sh.root.Store(&newHandler)
}

// current resolves the destination with this handler's attrs and groups applied.
func (sh *SwappableHandler) current() slog.Handler {
	h := *sh.root.Load()
	for _, step := range sh.steps {
		h = step(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (sh *SwappableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return (*sh.root.Load()).Enabled(ctx, level)
}

// Handle handles the Record.
func (sh *SwappableHandler) Handle(ctx context.Context, r slog.Record) error {
	return sh.current().Handle(ctx, r)
}

// WithAttrs returns a derived handler that adds attrs to every record.
func (sh *SwappableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return sh
	}
	return sh.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup returns a derived handler that nests later attrs under name.
func (sh *SwappableHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return sh
	}
	return sh.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (sh *SwappableHandler) derive(step func(slog.Handler) slog.Handler) *SwappableHandler {
	steps := make([]func(slog.Handler) slog.Handler, len(sh.steps), len(sh.steps)+1)
	copy(steps, sh.steps)
	return &SwappableHandler{root: sh.root, steps: append(steps, step)}
}
