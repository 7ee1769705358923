package logging

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// groupOrAttrs is one WithGroup or WithAttrs call made after the first group
// was opened. Exactly one of the fields is set.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// contextHandler writes the context attributes at the top level of every
// record, whatever groups the logger has opened. It keeps base ungrouped and
// replays the logger's groups around the record's own attributes.
type contextHandler struct {
	base          slog.Handler
	goas          []groupOrAttrs
	defaultModule Module
}

func newContextHandler(base slog.Handler, defaultModule Module) *contextHandler {
	return &contextHandler{base: base, defaultModule: defaultModule}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	out.AddAttrs(h.contextAttrs(ctx)...)
	out.AddAttrs(h.nest(r)...)

	return h.base.Handle(ctx, out)
}

func (h *contextHandler) contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	if module, ok := ModuleFromContext(ctx); ok {
		attrs = append(attrs, slog.String("module", string(module)))
	} else if h.defaultModule != "" {
		attrs = append(attrs, slog.String("module", string(h.defaultModule)))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return attrs
}

// nest wraps the record attributes in the open groups, innermost first.
// Groups left empty are dropped, as slog's own handlers do.
func (h *contextHandler) nest(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	for i := len(h.goas) - 1; i >= 0; i-- {
		goa := h.goas[i]

		if goa.group == "" {
			attrs = append(slices.Clone(goa.attrs), attrs...)

			continue
		}

		if len(attrs) == 0 {
			continue
		}

		attrs = []slog.Attr{{Key: goa.group, Value: slog.GroupValue(attrs...)}}
	}

	return attrs
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	// Before any group is open the attributes are top level and can be
	// preformatted by the base handler.
	if len(h.goas) == 0 {
		return newContextHandler(h.base.WithAttrs(attrs), h.defaultModule)
	}

	return h.withGroupOrAttrs(groupOrAttrs{attrs: slices.Clone(attrs)})
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

func (h *contextHandler) withGroupOrAttrs(goa groupOrAttrs) *contextHandler {
	return &contextHandler{
		base:          h.base,
		goas:          append(slices.Clone(h.goas), goa),
		defaultModule: h.defaultModule,
	}
}
