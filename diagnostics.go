package navi

import (
	"context"
	"log/slog"
)

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	DiagActivated       DiagnosticKind = "activated"
	DiagNoRoute         DiagnosticKind = "no_route"
	DiagViewMissing     DiagnosticKind = "view_missing"
	DiagRouteRegistered DiagnosticKind = "route_registered"
)

// DiagnosticEvent describes something the engine did or failed to do.
// Fields always carries "id" (the engine's route table id); the other
// keys depend on Kind.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticHandler receives diagnostic events from the engine.
// Handlers run synchronously on the activating call.
type DiagnosticHandler interface {
	HandleDiagnostic(DiagnosticEvent)
}

type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) HandleDiagnostic(e DiagnosticEvent) {
	f(e)
}

// logDiagnostic writes the event to the engine logger. Missing views
// are configuration errors and are logged whether or not debug is on.
func (e *Engine) logDiagnostic(ev DiagnosticEvent) {
	var level slog.Level
	switch ev.Kind {
	case DiagViewMissing:
		level = slog.LevelError
	case DiagNoRoute:
		if !e.debug {
			return
		}
		level = slog.LevelWarn
	default:
		if !e.debug {
			return
		}
		level = slog.LevelInfo
	}

	attrs := make([]slog.Attr, 0, len(ev.Fields)+1)
	attrs = append(attrs, slog.String("kind", string(ev.Kind)))
	for k, v := range ev.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	e.logger.LogAttrs(context.Background(), level, ev.Message, attrs...)
}

func (e *Engine) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields["id"] = e.id
	ev := DiagnosticEvent{Kind: kind, Message: msg, Fields: fields}

	e.logDiagnostic(ev)
	for _, h := range e.diagnostics {
		h.HandleDiagnostic(ev)
	}
}
