// Package navi resolves URL-like paths to registered views, toggles
// their visibility, and runs per-route hydrate and init hooks.
//
// An Engine is single-threaded: all operations run to completion on the
// calling goroutine and the engine holds no locks, so hooks may call
// Navigate or Activate re-entrantly.
package navi

import (
	"fmt"
	"log/slog"
	"strings"
)

// Normalize strips all leading and trailing separators from a path.
// The empty result is the root path "/".
func Normalize(raw string) string {
	p := strings.Trim(raw, "/")
	if p == "" {
		return "/"
	}
	return p
}

type RouteVisitor interface {
	Visit(string, *RouteSpec)
}

type RouteVisitFunc func(string, *RouteSpec)

func (f RouteVisitFunc) Visit(s string, spec *RouteSpec) {
	f(s, spec)
}

type Engine struct {
	id          string
	lookup      ViewLookup
	triggers    []Trigger
	history     AddressSource
	hash        AddressSource
	logger      *slog.Logger
	debug       bool
	diagnostics []DiagnosticHandler
	pending     []*RouteSpec

	routes  []*route
	paths   *routetrie
	mode    AddressMode
	address AddressSource
	started bool

	currentID   string
	currentView View
}

// New creates an engine. A ViewLookup is required, and at most one of
// WithHistory and WithHash may be given.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		id:    "default",
		paths: newRoutetrie(),
	}
	for _, option := range options {
		option(e)
	}

	if e.lookup == nil {
		return nil, ErrNoViewLookup
	}
	switch {
	case e.history != nil && e.hash != nil:
		return nil, ErrConflictingAddressModes
	case e.history != nil:
		e.mode, e.address = ModeHistory, e.history
	case e.hash != nil:
		e.mode, e.address = ModeHash, e.hash
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	pending := e.pending
	e.pending = nil
	if err := e.Route(pending...); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Mode() AddressMode {
	return e.mode
}

// Route registers routes in order. Registration order decides which
// route wins when several patterns match the same path. Patterns are
// compiled here, so malformed patterns are reported immediately and no
// route from the failing call is registered.
func (e *Engine) Route(specs ...*RouteSpec) error {
	entries := make([]*route, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if spec == nil {
			return fmt.Errorf("%w: nil route", ErrMissingView)
		}
		if spec.viewID == "" {
			return fmt.Errorf("%w: %q", ErrMissingView, spec.pattern)
		}
		r, err := newRoute(spec)
		if err != nil {
			return err
		}
		key := r.matcher.Pattern()
		if existing, ok := e.paths.Get(key); ok && existing != nil {
			return fmt.Errorf("%w: %q", ErrDuplicateRoute, spec.pattern)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRoute, spec.pattern)
		}
		seen[key] = struct{}{}
		entries = append(entries, r)
	}

	for _, r := range entries {
		e.paths.Put(r.matcher.Pattern(), r)
		e.routes = append(e.routes, r)
		e.emit(DiagRouteRegistered, "route registered", map[string]any{
			"route":  r.matcher.Pattern(),
			"viewId": r.spec.viewID,
			"params": r.matcher.Names(),
		})
	}
	return nil
}

// Routes returns the registered routes in registration order.
func (e *Engine) Routes() []*RouteSpec {
	specs := make([]*RouteSpec, len(e.routes))
	for i, r := range e.routes {
		specs[i] = r.spec
	}
	return specs
}

// InitState reports the init hook state of the route registered under
// pattern in this engine.
func (e *Engine) InitState(pattern string) (InitState, bool) {
	r, ok := e.paths.Get(Normalize(pattern))
	if !ok || r == nil {
		return Armed, false
	}
	return r.state(), true
}

// Walk visits every registered route in pattern order, by segment.
func (e *Engine) Walk(v RouteVisitor) {
	e.paths.walk(func(r *route) {
		v.Visit(r.matcher.Pattern(), r.spec)
	})
}

// Normalize is the engine's path canonicalization. See the package
// level Normalize.
func (e *Engine) Normalize(raw string) string {
	return Normalize(raw)
}

// Resolve returns the first registered route that matches the
// normalized path.
func (e *Engine) Resolve(path string) (*MatchResult, bool) {
	for _, r := range e.routes {
		params, ok := r.matcher.Match(path)
		if !ok {
			continue
		}

		res := &MatchResult{
			ViewID:  r.spec.viewID,
			Params:  params,
			Route:   r.matcher.Pattern(),
			Hydrate: r.spec.hydrate,
			route:   r,
		}
		if r.state() == Armed {
			res.Init = r.spec.init
		}
		return res, true
	}
	return nil, false
}

// Current returns the identifier of the view currently shown.
func (e *Engine) Current() (string, bool) {
	return e.currentID, e.currentView != nil
}

// Activate renders the view for raw: it hides the previous view, shows
// the resolved one, then runs the route's hydrate hook and, on the
// first activation only, its init hook.
//
// An unmatched path returns an error wrapping ErrNoRoute, and a view
// the lookup cannot find returns one wrapping ErrViewNotFound. Neither
// changes what is shown.
func (e *Engine) Activate(raw string) error {
	path := Normalize(raw)

	res, ok := e.Resolve(path)
	if !ok {
		e.emit(DiagNoRoute, "no route found", map[string]any{"path": path})
		return fmt.Errorf("%w for %q", ErrNoRoute, path)
	}

	view, ok := e.lookup.LookupView(res.ViewID)
	if !ok || view == nil {
		e.emit(DiagViewMissing, "view not found", map[string]any{
			"path":   path,
			"route":  res.Route,
			"viewId": res.ViewID,
		})
		return fmt.Errorf("%w: %q (route %q)", ErrViewNotFound, res.ViewID, res.Route)
	}

	if e.currentView != nil && e.currentID != res.ViewID {
		e.currentView.Hide()
	}
	view.Show()
	e.currentID = res.ViewID
	e.currentView = view

	act := &Activation{
		Params: res.Params,
		View:   view,
		Route:  res.Route,
	}
	if res.Hydrate != nil {
		res.Hydrate(act)
	}
	if init := res.route.takeInit(); init != nil {
		init(act)
	}

	e.emit(DiagActivated, "route activated", map[string]any{
		"params": res.Params,
		"viewId": res.ViewID,
		"route":  res.Route,
	})
	return nil
}

// Navigate records raw in the address source, if any, and activates it.
// In history mode a new entry is pushed only when the address changes.
func (e *Engine) Navigate(raw string) error {
	path := Normalize(raw)

	switch e.mode {
	case ModeHash:
		e.address.Push(path)
	case ModeHistory:
		if Normalize(e.address.Current()) != path {
			e.address.Push(path)
		}
	}
	return e.Activate(path)
}

// Start binds the triggers, subscribes to external address changes and
// activates the initial path. Without an address source the initial
// path is "/".
func (e *Engine) Start() error {
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	for _, t := range e.triggers {
		t.Bind(e.Navigate)
	}

	initial := "/"
	if e.address != nil {
		e.address.Listen(e.onAddressChange)
		initial = e.address.Current()
	}
	return e.Activate(initial)
}

// onAddressChange handles back/forward and hash edits. Errors have
// already been reported through diagnostics.
func (e *Engine) onAddressChange(raw string) {
	_ = e.Activate(raw)
}
