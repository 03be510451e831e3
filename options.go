package navi

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithID sets the identifier reported in diagnostics. It defaults to
// "default".
func WithID(id string) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// WithViewLookup sets how view identifiers are turned into views.
// It is required.
func WithViewLookup(l ViewLookup) Option {
	return func(e *Engine) {
		e.lookup = l
	}
}

// WithTrigger sets the collaborator that decides when to navigate.
// Start binds it to Engine.Navigate.
func WithTrigger(t Trigger) Option {
	return func(e *Engine) {
		e.triggers = append(e.triggers, t)
	}
}

// WithHistory records the active path in a history-style source.
func WithHistory(src AddressSource) Option {
	return func(e *Engine) {
		e.history = src
	}
}

// WithHash records the active path in a hash fragment source.
func WithHash(src AddressSource) Option {
	return func(e *Engine) {
		e.hash = src
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithDebug enables logging of every activation and of unmatched paths.
func WithDebug(v bool) Option {
	return func(e *Engine) {
		e.debug = v
	}
}

// WithDiagnostics adds handlers that receive every diagnostic event.
func WithDiagnostics(handlers ...DiagnosticHandler) Option {
	return func(e *Engine) {
		e.diagnostics = append(e.diagnostics, handlers...)
	}
}

// WithRoutes registers routes at construction time, in order.
func WithRoutes(specs ...*RouteSpec) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, specs...)
	}
}
