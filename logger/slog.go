package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// Handler is a slog.Handler that renders records through a Sink, so code
// written against log/slog gets the same single-line output. Attributes are
// appended to the message as key=value text.
type Handler struct {
	sink   Sink
	prefix string
	attrs  string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a Handler writing to s. A nil s routes records through
// the process-wide sink and global level filter instead.
func NewHandler(s Sink) *Handler {
	return &Handler{sink: s}
}

// FromSlogLevel maps a slog level onto the five severities. Anything below
// slog.LevelDebug is treated as trace.
func FromSlogLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return TraceLevel
	case level < slog.LevelInfo:
		return DebugLevel
	case level < slog.LevelWarn:
		return InfoLevel
	case level < slog.LevelError:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

func (h *Handler) target() Sink {
	if h.sink != nil {
		return h.sink
	}
	return currentSink()
}

func (h *Handler) enabled(level Level) bool {
	if h.sink == nil {
		return Enabled(level)
	}
	return h.sink.Enabled(level)
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(FromSlogLevel(level))
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := FromSlogLevel(r.Level)
	if !h.enabled(level) {
		return nil
	}
	s := h.target()
	if s == nil {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})

	rec := Record{Level: level, Message: sb.String()}
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		rec.File = f.File
		rec.Line = f.Line
	}
	s.Log(&rec)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}
	h2 := *h
	h2.attrs = sb.String()
	return &h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// appendAttr writes " key=value", expanding groups into dotted keys.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, prefix, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
